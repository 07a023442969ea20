package goal_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/goal"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
)

func createGoal(t *testing.T, uc *goal.CreateGoalUseCase, org string) *dto.GoalResponse {
	t.Helper()
	out, err := uc.Execute(context.Background(), org, dto.CreateGoalRequest{
		Title:        "Vacaciones",
		Description:  "Viaje a la costa",
		TargetAmount: decimal.NewFromInt(5000),
		Deadline:     time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return out
}

func TestCreateGoal_CurrentAmountPorDefecto(t *testing.T) {
	repo := memory.NewGoalRepository()
	out := createGoal(t, goal.NewCreateGoalUseCase(repo), "org")
	assert.True(t, out.CurrentAmount.IsZero())
	assert.True(t, decimal.NewFromInt(5000).Equal(out.TargetAmount))
}

func TestUpdateGoal_Parcial(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewGoalRepository()
	created := createGoal(t, goal.NewCreateGoalUseCase(repo), "org")

	current := decimal.NewFromInt(1200)
	out, err := goal.NewUpdateGoalUseCase(repo).Execute(ctx, "org", created.ID, dto.UpdateGoalRequest{CurrentAmount: &current})
	require.NoError(t, err)
	assert.True(t, current.Equal(out.CurrentAmount))
	assert.Equal(t, "Vacaciones", out.Title)
	assert.Equal(t, created.Deadline, out.Deadline)
}

func TestUpdateGoal_DescripcionVaciaExplicita(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewGoalRepository()
	created := createGoal(t, goal.NewCreateGoalUseCase(repo), "org")

	empty := ""
	out, err := goal.NewUpdateGoalUseCase(repo).Execute(ctx, "org", created.ID, dto.UpdateGoalRequest{Description: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", out.Description)
}

func TestUpdateGoal_Inexistente(t *testing.T) {
	repo := memory.NewGoalRepository()
	title := "x"
	_, err := goal.NewUpdateGoalUseCase(repo).Execute(context.Background(), "org", "nada", dto.UpdateGoalRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)
}

func TestDeleteGoal_EcoYAislamiento(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewGoalRepository()
	created := createGoal(t, goal.NewCreateGoalUseCase(repo), "org-a")
	uc := goal.NewDeleteGoalUseCase(repo)

	_, err := uc.Execute(ctx, "org-b", created.ID)
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)

	out, err := uc.Execute(ctx, "org-a", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)

	list, err := goal.NewSearchGoalsUseCase(repo).Execute(ctx, "org-a")
	require.NoError(t, err)
	assert.Empty(t, list)
}
