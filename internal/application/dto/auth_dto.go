package dto

import "time"

// LoginRequest entrada para login de la organización.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Completados por el handler, no por el cliente.
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResponse token JWT + organización autenticada.
type LoginResponse struct {
	Token        string               `json:"token"`
	Organization OrganizationResponse `json:"organization"`
}

// ForgotPasswordRequest solicitud de token de recuperación.
type ForgotPasswordRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	RedirectURL *string `json:"redirect_url" validate:"omitempty,url"`
}

// ForgotPasswordResult salida interna del caso de uso. El handler no expone el token al cliente.
type ForgotPasswordResult struct {
	Token     string
	Email     string
	ExpiresAt time.Time
}

// ResetPasswordRequest nueva contraseña con el token recibido por correo.
type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required,len=64,hexadecimal"`
	Password string `json:"password" validate:"required,min=8"`
}
