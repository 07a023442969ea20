package category

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// SearchCategoriesUseCase lista categorías de la organización.
type SearchCategoriesUseCase struct {
	repo repository.CategoryRepository
}

// NewSearchCategoriesUseCase construye el caso de uso.
func NewSearchCategoriesUseCase(repo repository.CategoryRepository) *SearchCategoriesUseCase {
	return &SearchCategoriesUseCase{repo: repo}
}

// Execute devuelve {categories: [...]}.
func (uc *SearchCategoriesUseCase) Execute(ctx context.Context, organizationID string) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.FindByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	out := &dto.CategoryListResponse{Categories: make([]dto.CategoryResponse, 0, len(list))}
	for _, c := range list {
		out.Categories = append(out.Categories, toCategoryResponse(c))
	}
	return out, nil
}
