package goal

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// DeleteGoalUseCase elimina una meta y devuelve la fila eliminada.
type DeleteGoalUseCase struct {
	repo repository.GoalRepository
}

// NewDeleteGoalUseCase construye el caso de uso.
func NewDeleteGoalUseCase(repo repository.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{repo: repo}
}

// Execute busca y luego elimina. ErrGoalNotFound si no existe.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, organizationID, id string) (*dto.GoalResponse, error) {
	current, err := uc.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrGoalNotFound
	}
	deleted, err := uc.repo.Delete(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.ErrGoalNotFound
	}
	out := toGoalResponse(deleted)
	return &out, nil
}
