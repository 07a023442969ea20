package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) (*entity.Category, error)
	// CreateMany omite las categorías cuyo (organization_id, name) ya existe.
	CreateMany(ctx context.Context, categories []*entity.Category) (BatchResult, error)
	FindByID(ctx context.Context, organizationID, id string) (*entity.Category, error)
	FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Category, error)
}

// SubCategoryRepository define el puerto de persistencia para SubCategory.
type SubCategoryRepository interface {
	Create(ctx context.Context, sub *entity.SubCategory) (*entity.SubCategory, error)
	CreateMany(ctx context.Context, subs []*entity.SubCategory) (BatchResult, error)
	FindByCategoryID(ctx context.Context, organizationID, categoryID string) ([]*entity.SubCategory, error)
}

// CategoryCreditCardRepository tabla global de categorías de tarjeta de crédito.
type CategoryCreditCardRepository interface {
	CreateMany(ctx context.Context, items []*entity.CategoryCreditCard) (BatchResult, error)
	SearchMany(ctx context.Context) ([]*entity.CategoryCreditCard, error)
}
