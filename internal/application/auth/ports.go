// Package auth casos de uso de autenticación de organizaciones: login y recuperación de contraseña.
package auth

import "context"

// Mailer entrega el correo de recuperación. redirectURL nil usa la URL por defecto del adaptador.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, token string, redirectURL *string) error
}

// NotificationObserver recibe los fallos de notificaciones best-effort.
type NotificationObserver interface {
	NotificationFailed(ctx context.Context, channel string, err error)
}

// ChannelEmail canal reportado al observer cuando falla el envío del correo.
const ChannelEmail = "email"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}
