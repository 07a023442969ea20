package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBillRequest entrada para crear una cuenta por pagar. Siempre nace con paid=false.
type CreateBillRequest struct {
	Description string          `json:"description" validate:"required,min=1,max=255"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date" validate:"required"`
	CategoryID  *string         `json:"category_id" validate:"omitempty,uuid"`
	WalletID    *string         `json:"wallet_id" validate:"omitempty,uuid"`
}

// MarkBillAsPaidRequest valor explícito del flag (no es un toggle).
type MarkBillAsPaidRequest struct {
	Paid *bool `json:"paid" validate:"required"`
}

// BillResponse salida de una cuenta por pagar.
type BillResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"due_date"`
	Paid           bool            `json:"paid"`
	CategoryID     *string         `json:"category_id"`
	WalletID       *string         `json:"wallet_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
