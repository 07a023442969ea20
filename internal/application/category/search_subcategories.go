package category

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// SearchSubCategoriesUseCase devuelve una categoría junto con sus subcategorías.
type SearchSubCategoriesUseCase struct {
	categoryRepo repository.CategoryRepository
	subRepo      repository.SubCategoryRepository
}

// NewSearchSubCategoriesUseCase construye el caso de uso.
func NewSearchSubCategoriesUseCase(categoryRepo repository.CategoryRepository, subRepo repository.SubCategoryRepository) *SearchSubCategoriesUseCase {
	return &SearchSubCategoriesUseCase{categoryRepo: categoryRepo, subRepo: subRepo}
}

// Execute consulta la categoría y sus subcategorías en paralelo y une ambos resultados.
func (uc *SearchSubCategoriesUseCase) Execute(ctx context.Context, organizationID, categoryID string) (*dto.SubCategoryListResponse, error) {
	var (
		parent *entity.Category
		subs   []*entity.SubCategory
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := uc.categoryRepo.FindByID(gctx, organizationID, categoryID)
		parent = c
		return err
	})
	g.Go(func() error {
		s, err := uc.subRepo.FindByCategoryID(gctx, organizationID, categoryID)
		subs = s
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrCategoryNotFound
	}

	out := &dto.SubCategoryListResponse{
		Category:      toCategoryResponse(parent),
		SubCategories: make([]dto.SubCategoryResponse, 0, len(subs)),
	}
	for _, s := range subs {
		out.SubCategories = append(out.SubCategories, toSubCategoryResponse(s))
	}
	return out, nil
}
