package goal

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// SearchGoalsUseCase lista las metas de la organización (lista plana).
type SearchGoalsUseCase struct {
	repo repository.GoalRepository
}

// NewSearchGoalsUseCase construye el caso de uso.
func NewSearchGoalsUseCase(repo repository.GoalRepository) *SearchGoalsUseCase {
	return &SearchGoalsUseCase{repo: repo}
}

// Execute devuelve las metas de la organización.
func (uc *SearchGoalsUseCase) Execute(ctx context.Context, organizationID string) ([]dto.GoalResponse, error) {
	list, err := uc.repo.FindByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GoalResponse, 0, len(list))
	for _, g := range list {
		out = append(out, toGoalResponse(g))
	}
	return out, nil
}
