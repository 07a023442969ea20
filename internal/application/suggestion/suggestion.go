// Package suggestion casos de uso de sugerencias enviadas por las organizaciones.
package suggestion

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

func toSuggestionResponse(s *entity.Suggestion) dto.SuggestionResponse {
	return dto.SuggestionResponse{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		Title:          s.Title,
		Description:    s.Description,
		CreatedAt:      s.CreatedAt,
	}
}

type CreateSuggestionUseCase struct {
	repo repository.SuggestionRepository
}

func NewCreateSuggestionUseCase(repo repository.SuggestionRepository) *CreateSuggestionUseCase {
	return &CreateSuggestionUseCase{repo: repo}
}

func (uc *CreateSuggestionUseCase) Execute(ctx context.Context, organizationID string, in dto.CreateSuggestionRequest) (*dto.SuggestionResponse, error) {
	created, err := uc.repo.Create(ctx, &entity.Suggestion{
		OrganizationID: organizationID,
		Title:          in.Title,
		Description:    in.Description,
	})
	if err != nil {
		return nil, err
	}
	out := toSuggestionResponse(created)
	return &out, nil
}

type SearchSuggestionsUseCase struct {
	repo repository.SuggestionRepository
}

func NewSearchSuggestionsUseCase(repo repository.SuggestionRepository) *SearchSuggestionsUseCase {
	return &SearchSuggestionsUseCase{repo: repo}
}

func (uc *SearchSuggestionsUseCase) Execute(ctx context.Context, organizationID string) ([]dto.SuggestionResponse, error) {
	list, err := uc.repo.FindByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SuggestionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSuggestionResponse(s))
	}
	return out, nil
}
