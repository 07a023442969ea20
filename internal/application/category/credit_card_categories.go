package category

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// ImportCategoryCreditCardsUseCase carga masiva del catálogo global de tarjetas.
type ImportCategoryCreditCardsUseCase struct {
	repo repository.CategoryCreditCardRepository
}

// NewImportCategoryCreditCardsUseCase construye el caso de uso.
func NewImportCategoryCreditCardsUseCase(repo repository.CategoryCreditCardRepository) *ImportCategoryCreditCardsUseCase {
	return &ImportCategoryCreditCardsUseCase{repo: repo}
}

// Execute inserta omitiendo nombres ya existentes.
func (uc *ImportCategoryCreditCardsUseCase) Execute(ctx context.Context, in dto.ImportCategoryCreditCardsRequest) (*dto.BatchResponse, error) {
	items := make([]*entity.CategoryCreditCard, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, &entity.CategoryCreditCard{Name: it.Name, Code: it.Code})
	}
	res, err := uc.repo.CreateMany(ctx, items)
	if err != nil {
		return nil, err
	}
	return &dto.BatchResponse{Count: res.Count}, nil
}

// SearchCategoryCreditCardsUseCase lista el catálogo global.
type SearchCategoryCreditCardsUseCase struct {
	repo repository.CategoryCreditCardRepository
}

// NewSearchCategoryCreditCardsUseCase construye el caso de uso.
func NewSearchCategoryCreditCardsUseCase(repo repository.CategoryCreditCardRepository) *SearchCategoryCreditCardsUseCase {
	return &SearchCategoryCreditCardsUseCase{repo: repo}
}

func (uc *SearchCategoryCreditCardsUseCase) Execute(ctx context.Context) ([]dto.CategoryCreditCardResponse, error) {
	list, err := uc.repo.SearchMany(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryCreditCardResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryCreditCardResponse(c))
	}
	return out, nil
}
