package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGoalRequest entrada para crear una meta. CurrentAmount ausente = 0.
type CreateGoalRequest struct {
	Title         string           `json:"title" validate:"required,min=1,max=200"`
	Description   string           `json:"description" validate:"max=1000"`
	TargetAmount  decimal.Decimal  `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	Deadline      time.Time        `json:"deadline" validate:"required"`
}

// UpdateGoalRequest actualización parcial; description "" borra la descripción, nil la deja igual.
type UpdateGoalRequest struct {
	Title         *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" validate:"omitempty,max=1000"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	Deadline      *time.Time       `json:"deadline"`
}

// GoalResponse salida de una meta.
type GoalResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	CurrentAmount  decimal.Decimal `json:"current_amount"`
	Deadline       time.Time       `json:"deadline"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
