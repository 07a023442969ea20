package entity

import "time"

// Tipos de Company.
const (
	CompanyTypeBank       = "bank"
	CompanyTypeCreditCard = "credit_card"
	CompanyTypeBroker     = "broker"
)

// Company representa un banco o institución financiera registrada por la organización.
type Company struct {
	ID             string
	OrganizationID string
	Name           string // único por organización
	Code           string // código del banco (ej. COMPE)
	Type           string // bank, credit_card, broker
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
