package entity

import "time"

// PasswordResetToken token de un solo uso para recuperar la contraseña de una organización.
type PasswordResetToken struct {
	Token     string // 64 caracteres hex
	Email     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// Valid indica si el token puede usarse en el instante now.
func (t *PasswordResetToken) Valid(now time.Time) bool {
	return t != nil && !t.Used && now.Before(t.ExpiresAt)
}
