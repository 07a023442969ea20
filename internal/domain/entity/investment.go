package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment representa una inversión registrada por la organización.
type Investment struct {
	ID             string
	OrganizationID string
	Name           string
	Type           string
	Amount         decimal.Decimal
	CompanyID      *string // institución donde está la inversión, opcional
	CreatedAt      time.Time
}
