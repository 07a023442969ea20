package entity

import (
	"strings"
	"time"
)

// Organization es el tenant raíz: toda entidad con OrganizationID le pertenece durante toda su vida.
type Organization struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string  // bcrypt, nunca texto plano
	Image        *string // nil = sin imagen
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail forma canónica usada para buscar y guardar emails.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
