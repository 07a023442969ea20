package entity

import "time"

// Roles válidos para User.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
	RoleViewer = "viewer"
)

// User miembro de una organización (no tiene credenciales propias; el login es de la organización).
type User struct {
	ID             string
	OrganizationID string
	Name           string
	Email          string
	Role           string // owner, member, viewer
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
