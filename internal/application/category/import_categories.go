package category

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// ImportCategoriesUseCase carga masiva de categorías. Los duplicados (organización, nombre) se omiten.
type ImportCategoriesUseCase struct {
	repo repository.CategoryRepository
}

// NewImportCategoriesUseCase construye el caso de uso.
func NewImportCategoriesUseCase(repo repository.CategoryRepository) *ImportCategoriesUseCase {
	return &ImportCategoriesUseCase{repo: repo}
}

// Execute devuelve el número de filas realmente insertadas.
func (uc *ImportCategoriesUseCase) Execute(ctx context.Context, organizationID string, in dto.ImportCategoriesRequest) (*dto.BatchResponse, error) {
	items := make([]*entity.Category, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, newCategory(organizationID, it))
	}
	res, err := uc.repo.CreateMany(ctx, items)
	if err != nil {
		return nil, err
	}
	return &dto.BatchResponse{Count: res.Count}, nil
}
