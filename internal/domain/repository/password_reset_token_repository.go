package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// PasswordResetTokenRepository persiste los tokens de recuperación de contraseña.
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, token *entity.PasswordResetToken) error
	// FindByToken devuelve (nil, nil) si el token no existe.
	FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)
	MarkUsed(ctx context.Context, token string) error
}
