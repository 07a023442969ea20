package entity

import "time"

// Tipos válidos de Category.
const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

// Category agrupa movimientos de la organización. Nombre único por organización.
type Category struct {
	ID             string
	OrganizationID string
	Name           string
	Type           string // income, expense
	Color          string
	Icon           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SubCategory pertenece a una Category de la misma organización. Nombre único por categoría.
type SubCategory struct {
	ID             string
	OrganizationID string
	CategoryID     string
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CategoryCreditCard es una tabla de consulta global (no pertenece a ninguna organización).
type CategoryCreditCard struct {
	ID        string
	Name      string // único
	Code      string
	CreatedAt time.Time
}
