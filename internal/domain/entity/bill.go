package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill representa una cuenta por pagar. Ciclo de vida: creada -> (paid=false <-> paid=true) -> eliminada.
type Bill struct {
	ID             string
	OrganizationID string
	Description    string
	Amount         decimal.Decimal
	DueDate        time.Time
	Paid           bool
	CategoryID     *string
	WalletID       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
