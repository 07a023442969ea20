package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal representa una meta de ahorro de la organización.
type Goal struct {
	ID             string
	OrganizationID string
	Title          string
	Description    string
	TargetAmount   decimal.Decimal
	CurrentAmount  decimal.Decimal
	Deadline       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GoalPatch campos opcionales de una actualización parcial. Description "" es distinto de nil.
type GoalPatch struct {
	Title         *string
	Description   *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
}

// IsEmpty indica que el patch no trae ningún campo.
func (p GoalPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.TargetAmount == nil &&
		p.CurrentAmount == nil && p.Deadline == nil
}
