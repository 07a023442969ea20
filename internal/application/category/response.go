// Package category contiene los casos de uso de categorías, subcategorías y
// categorías de tarjeta de crédito (estas últimas son globales, sin organización).
package category

import (
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Type:           c.Type,
		Color:          c.Color,
		Icon:           c.Icon,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toSubCategoryResponse(s *entity.SubCategory) dto.SubCategoryResponse {
	return dto.SubCategoryResponse{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		CategoryID:     s.CategoryID,
		Name:           s.Name,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toCategoryCreditCardResponse(c *entity.CategoryCreditCard) dto.CategoryCreditCardResponse {
	return dto.CategoryCreditCardResponse{
		ID:        c.ID,
		Name:      c.Name,
		Code:      c.Code,
		CreatedAt: c.CreatedAt,
	}
}

func newCategory(organizationID string, in dto.CreateCategoryRequest) *entity.Category {
	return &entity.Category{
		OrganizationID: organizationID,
		Name:           in.Name,
		Type:           in.Type,
		Color:          in.Color,
		Icon:           in.Icon,
	}
}
