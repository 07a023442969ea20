package category

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// CreateSubCategoryUseCase crea una subcategoría bajo una categoría existente de la organización.
type CreateSubCategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	subRepo      repository.SubCategoryRepository
}

// NewCreateSubCategoryUseCase construye el caso de uso.
func NewCreateSubCategoryUseCase(categoryRepo repository.CategoryRepository, subRepo repository.SubCategoryRepository) *CreateSubCategoryUseCase {
	return &CreateSubCategoryUseCase{categoryRepo: categoryRepo, subRepo: subRepo}
}

// Execute falla con ErrCategoryNotFound si la categoría padre no pertenece a la organización.
func (uc *CreateSubCategoryUseCase) Execute(ctx context.Context, organizationID, categoryID string, in dto.CreateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	parent, err := uc.categoryRepo.FindByID(ctx, organizationID, categoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrCategoryNotFound
	}
	created, err := uc.subRepo.Create(ctx, &entity.SubCategory{
		OrganizationID: organizationID,
		CategoryID:     parent.ID,
		Name:           in.Name,
	})
	if err != nil {
		return nil, err
	}
	out := toSubCategoryResponse(created)
	return &out, nil
}
