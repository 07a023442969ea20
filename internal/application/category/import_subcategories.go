package category

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// ImportSubCategoriesUseCase carga masiva de subcategorías bajo una categoría de la organización.
type ImportSubCategoriesUseCase struct {
	categoryRepo repository.CategoryRepository
	subRepo      repository.SubCategoryRepository
}

// NewImportSubCategoriesUseCase construye el caso de uso.
func NewImportSubCategoriesUseCase(categoryRepo repository.CategoryRepository, subRepo repository.SubCategoryRepository) *ImportSubCategoriesUseCase {
	return &ImportSubCategoriesUseCase{categoryRepo: categoryRepo, subRepo: subRepo}
}

// Execute omite nombres repetidos dentro de la categoría.
func (uc *ImportSubCategoriesUseCase) Execute(ctx context.Context, organizationID, categoryID string, in dto.ImportSubCategoriesRequest) (*dto.BatchResponse, error) {
	parent, err := uc.categoryRepo.FindByID(ctx, organizationID, categoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrCategoryNotFound
	}
	items := make([]*entity.SubCategory, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, &entity.SubCategory{
			OrganizationID: organizationID,
			CategoryID:     parent.ID,
			Name:           it.Name,
		})
	}
	res, err := uc.subRepo.CreateMany(ctx, items)
	if err != nil {
		return nil, err
	}
	return &dto.BatchResponse{Count: res.Count}, nil
}
