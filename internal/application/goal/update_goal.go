package goal

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// UpdateGoalUseCase actualización parcial de una meta.
type UpdateGoalUseCase struct {
	repo repository.GoalRepository
}

// NewUpdateGoalUseCase construye el caso de uso.
func NewUpdateGoalUseCase(repo repository.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{repo: repo}
}

// Execute verifica existencia y aplica solo los campos presentes.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, organizationID, id string, in dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	current, err := uc.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrGoalNotFound
	}
	patch := entity.GoalPatch{
		Title:         in.Title,
		Description:   in.Description,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Deadline:      in.Deadline,
	}
	if patch.IsEmpty() {
		out := toGoalResponse(current)
		return &out, nil
	}
	updated, err := uc.repo.Update(ctx, organizationID, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrGoalNotFound
	}
	out := toGoalResponse(updated)
	return &out, nil
}
