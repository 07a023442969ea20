package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=120"`
	Type  string `json:"type" validate:"required,oneof=income expense"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Icon  string `json:"icon" validate:"max=60"`
}

// ImportCategoriesRequest importación masiva idempotente.
type ImportCategoriesRequest struct {
	Items []CreateCategoryRequest `json:"items" validate:"required,min=1,dive"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Color          string    `json:"color"`
	Icon           string    `json:"icon"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CategoryListResponse lista de categorías de la organización.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CreateSubCategoryRequest entrada para crear una subcategoría.
type CreateSubCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// ImportSubCategoriesRequest carga masiva bajo una categoría.
type ImportSubCategoriesRequest struct {
	Items []CreateSubCategoryRequest `json:"items" validate:"required,min=1,dive"`
}

// SubCategoryResponse salida de una subcategoría.
type SubCategoryResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	CategoryID     string    `json:"category_id"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SubCategoryListResponse categoría padre con sus subcategorías.
type SubCategoryListResponse struct {
	Category      CategoryResponse      `json:"category"`
	SubCategories []SubCategoryResponse `json:"sub_categories"`
}

// CategoryCreditCardRequest ítem de la tabla global de categorías de tarjeta.
type CategoryCreditCardRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
	Code string `json:"code" validate:"max=20"`
}

// ImportCategoryCreditCardsRequest importación masiva idempotente (global).
type ImportCategoryCreditCardsRequest struct {
	Items []CategoryCreditCardRequest `json:"items" validate:"required,min=1,dive"`
}

// CategoryCreditCardResponse salida de una categoría de tarjeta.
type CategoryCreditCardResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}
