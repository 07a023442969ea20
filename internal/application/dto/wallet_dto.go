package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWalletRequest entrada para crear una billetera. Balance ausente = 0.
type CreateWalletRequest struct {
	Name    string           `json:"name" validate:"required,min=1,max=120"`
	Balance *decimal.Decimal `json:"balance"`
}

// UpdateWalletRequest actualización parcial (nil = no cambia).
type UpdateWalletRequest struct {
	Name    *string          `json:"name" validate:"omitempty,min=1,max=120"`
	Balance *decimal.Decimal `json:"balance"`
}

// WalletResponse salida de una billetera.
type WalletResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	Name           string          `json:"name"`
	Balance        decimal.Decimal `json:"balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// WalletListResponse lista de billeteras de la organización.
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}
