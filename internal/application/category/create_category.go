package category

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// CreateCategoryUseCase crea una categoría en la organización.
type CreateCategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCreateCategoryUseCase construye el caso de uso.
func NewCreateCategoryUseCase(repo repository.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{repo: repo}
}

// Execute persiste la categoría.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, organizationID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	created, err := uc.repo.Create(ctx, newCategory(organizationID, in))
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(created)
	return &out, nil
}
