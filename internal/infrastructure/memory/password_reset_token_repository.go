package memory

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// PasswordResetTokenRepository tokens de recuperación indexados por el propio token.
type PasswordResetTokenRepository struct {
	t *table[entity.PasswordResetToken]
}

func NewPasswordResetTokenRepository() *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{t: newTable[entity.PasswordResetToken]()}
}

func (r *PasswordResetTokenRepository) Create(ctx context.Context, t *entity.PasswordResetToken) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	if r.t.get(t.Token) != nil {
		return domain.ErrDuplicate
	}
	r.t.put(t.Token, t)
	return nil
}

func (r *PasswordResetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.get(token), nil
}

// MarkUsed consume el token una sola vez; un token ya usado devuelve ErrInvalidResetToken.
func (r *PasswordResetTokenRepository) MarkUsed(ctx context.Context, token string) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row, ok := r.t.rows[token]
	if !ok || row.Used {
		return domain.ErrInvalidResetToken
	}
	row.Used = true
	return nil
}
