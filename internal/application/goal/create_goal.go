package goal

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// CreateGoalUseCase crea una meta.
type CreateGoalUseCase struct {
	repo repository.GoalRepository
}

// NewCreateGoalUseCase construye el caso de uso.
func NewCreateGoalUseCase(repo repository.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{repo: repo}
}

// Execute persiste la meta. CurrentAmount ausente inicia en 0.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, organizationID string, in dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	current := decimal.Zero
	if in.CurrentAmount != nil {
		current = *in.CurrentAmount
	}
	created, err := uc.repo.Create(ctx, &entity.Goal{
		OrganizationID: organizationID,
		Title:          in.Title,
		Description:    in.Description,
		TargetAmount:   in.TargetAmount,
		CurrentAmount:  current,
		Deadline:       in.Deadline,
	})
	if err != nil {
		return nil, err
	}
	out := toGoalResponse(created)
	return &out, nil
}
