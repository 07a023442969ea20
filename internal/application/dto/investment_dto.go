package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest entrada para registrar una inversión.
type CreateInvestmentRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Type      string          `json:"type" validate:"required,max=60"`
	Amount    decimal.Decimal `json:"amount"`
	CompanyID *string         `json:"company_id" validate:"omitempty,uuid"`
}

// InvestmentResponse salida de una inversión.
type InvestmentResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	CompanyID      *string         `json:"company_id"`
	CreatedAt      time.Time       `json:"created_at"`
}
