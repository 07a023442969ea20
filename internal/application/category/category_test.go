package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/category"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
)

type failingSubRepo struct {
	*memory.SubCategoryRepository
	err error
}

func (f failingSubRepo) FindByCategoryID(ctx context.Context, org, categoryID string) ([]*entity.SubCategory, error) {
	return nil, f.err
}

func TestImportCategories_OmiteDuplicados(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCategoryRepository()
	_, err := category.NewCreateCategoryUseCase(repo).Execute(ctx, "org", dto.CreateCategoryRequest{Name: "Comida", Type: "expense"})
	require.NoError(t, err)

	out, err := category.NewImportCategoriesUseCase(repo).Execute(ctx, "org", dto.ImportCategoriesRequest{Items: []dto.CreateCategoryRequest{
		{Name: "Comida", Type: "expense"},
		{Name: "Salario", Type: "income"},
		{Name: "Transporte", Type: "expense"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)

	list, err := category.NewSearchCategoriesUseCase(repo).Execute(ctx, "org")
	require.NoError(t, err)
	assert.Len(t, list.Categories, 3)
}

func TestCreateSubCategory_PadreDeOtraOrganizacion(t *testing.T) {
	ctx := context.Background()
	cats := memory.NewCategoryRepository()
	subs := memory.NewSubCategoryRepository()
	parent, err := category.NewCreateCategoryUseCase(cats).Execute(ctx, "org-a", dto.CreateCategoryRequest{Name: "Hogar", Type: "expense"})
	require.NoError(t, err)

	uc := category.NewCreateSubCategoryUseCase(cats, subs)
	_, err = uc.Execute(ctx, "org-b", parent.ID, dto.CreateSubCategoryRequest{Name: "Arriendo"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	out, err := uc.Execute(ctx, "org-a", parent.ID, dto.CreateSubCategoryRequest{Name: "Arriendo"})
	require.NoError(t, err)
	assert.Equal(t, parent.ID, out.CategoryID)
}

func TestSearchSubCategories_UneCategoriaYSubcategorias(t *testing.T) {
	ctx := context.Background()
	cats := memory.NewCategoryRepository()
	subs := memory.NewSubCategoryRepository()
	parent, _ := category.NewCreateCategoryUseCase(cats).Execute(ctx, "org", dto.CreateCategoryRequest{Name: "Hogar", Type: "expense"})

	imported, err := category.NewImportSubCategoriesUseCase(cats, subs).Execute(ctx, "org", parent.ID, dto.ImportSubCategoriesRequest{
		Items: []dto.CreateSubCategoryRequest{{Name: "Arriendo"}, {Name: "Servicios"}, {Name: "Arriendo"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, imported.Count)

	out, err := category.NewSearchSubCategoriesUseCase(cats, subs).Execute(ctx, "org", parent.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hogar", out.Category.Name)
	assert.Len(t, out.SubCategories, 2)
}

func TestSearchSubCategories_CategoriaInexistente(t *testing.T) {
	uc := category.NewSearchSubCategoriesUseCase(memory.NewCategoryRepository(), memory.NewSubCategoryRepository())
	_, err := uc.Execute(context.Background(), "org", "nada")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestSearchSubCategories_PropagaErrorDelStore(t *testing.T) {
	ctx := context.Background()
	cats := memory.NewCategoryRepository()
	parent, _ := category.NewCreateCategoryUseCase(cats).Execute(ctx, "org", dto.CreateCategoryRequest{Name: "Hogar", Type: "expense"})
	boom := errors.New("conexión perdida")

	uc := category.NewSearchSubCategoriesUseCase(cats, failingSubRepo{SubCategoryRepository: memory.NewSubCategoryRepository(), err: boom})
	_, err := uc.Execute(ctx, "org", parent.ID)
	assert.ErrorIs(t, err, boom)
}

func TestCategoryCreditCards_Global(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCategoryCreditCardRepository()
	out, err := category.NewImportCategoryCreditCardsUseCase(repo).Execute(ctx, dto.ImportCategoryCreditCardsRequest{
		Items: []dto.CategoryCreditCardRequest{{Name: "Visa", Code: "VI"}, {Name: "Mastercard", Code: "MC"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)

	again, err := category.NewImportCategoryCreditCardsUseCase(repo).Execute(ctx, dto.ImportCategoryCreditCardsRequest{
		Items: []dto.CategoryCreditCardRequest{{Name: "Visa"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, again.Count)

	list, err := category.NewSearchCategoryCreditCardsUseCase(repo).Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
