package dto

import "time"

// CreateCompanyRequest entrada para registrar un banco o institución.
type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Code string `json:"code" validate:"max=20"`
	Type string `json:"type" validate:"required,oneof=bank credit_card broker"`
}

// ImportCompaniesRequest importación masiva idempotente.
type ImportCompaniesRequest struct {
	Items []CreateCompanyRequest `json:"items" validate:"required,min=1,dive"`
}

// CompanyResponse salida de una institución.
type CompanyResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CompanyListResponse lista de instituciones de la organización.
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}
