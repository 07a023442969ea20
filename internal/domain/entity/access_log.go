package entity

import "time"

// Acciones registradas en AccessLog.
const (
	AccessActionLogin         = "login"
	AccessActionPasswordReset = "password_reset"
)

// AccessLog registro de acceso de una organización.
type AccessLog struct {
	ID             string
	OrganizationID string
	Action         string
	IP             string
	UserAgent      string
	CreatedAt      time.Time
}
