package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.PasswordResetTokenRepository = (*PasswordResetTokenRepo)(nil)

// PasswordResetTokenRepo tokens de recuperación de contraseña.
type PasswordResetTokenRepo struct {
	db Querier
}

func NewPasswordResetTokenRepository(db Querier) *PasswordResetTokenRepo {
	return &PasswordResetTokenRepo{db: db}
}

func (r *PasswordResetTokenRepo) Create(ctx context.Context, t *entity.PasswordResetToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_reset_tokens (token, email, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		t.Token, t.Email, t.ExpiresAt, t.Used, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert password reset token: %w", err)
	}
	return nil
}

func (r *PasswordResetTokenRepo) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	var t entity.PasswordResetToken
	err := r.db.QueryRow(ctx, `
		SELECT token, email, expires_at, used, created_at
		FROM password_reset_tokens WHERE token = $1`, token,
	).Scan(&t.Token, &t.Email, &t.ExpiresAt, &t.Used, &t.CreatedAt)
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get password reset token: %w", err)
	}
	return &t, nil
}

// MarkUsed consume el token; un token ya usado o inexistente devuelve ErrInvalidResetToken.
func (r *PasswordResetTokenRepo) MarkUsed(ctx context.Context, token string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE password_reset_tokens SET used = true WHERE token = $1 AND NOT used`, token)
	if err != nil {
		return fmt.Errorf("mark password reset token used: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidResetToken
	}
	return nil
}
