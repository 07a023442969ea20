package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet representa una billetera de la organización. Balance solo cambia por actualización explícita.
type Wallet struct {
	ID             string
	OrganizationID string
	Name           string
	Balance        decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WalletPatch campos opcionales de una actualización parcial (nil = no cambia).
type WalletPatch struct {
	Name    *string
	Balance *decimal.Decimal
}

// IsEmpty indica que el patch no trae ningún campo.
func (p WalletPatch) IsEmpty() bool {
	return p.Name == nil && p.Balance == nil
}
