package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

const (
	resetTokenBytes = 32
	// ResetTokenTTL vigencia del token de recuperación.
	ResetTokenTTL = time.Hour
)

// ForgotPasswordUseCase emite un token de recuperación y lo envía por correo.
type ForgotPasswordUseCase struct {
	tokens   repository.PasswordResetTokenRepository
	mailer   Mailer
	observer NotificationObserver
	now      func() time.Time
}

// NewForgotPasswordUseCase construye el caso de uso. now nil usa time.Now.
func NewForgotPasswordUseCase(tokens repository.PasswordResetTokenRepository, mailer Mailer, observer NotificationObserver, now func() time.Time) *ForgotPasswordUseCase {
	if now == nil {
		now = time.Now
	}
	return &ForgotPasswordUseCase{tokens: tokens, mailer: mailer, observer: observer, now: now}
}

// Execute persiste el token y luego intenta el envío. Un fallo del mailer se reporta al observer
// y no afecta el resultado.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, in dto.ForgotPasswordRequest) (*dto.ForgotPasswordResult, error) {
	token, err := newResetToken()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	t := &entity.PasswordResetToken{
		Token:     token,
		Email:     entity.NormalizeEmail(in.Email),
		ExpiresAt: now.Add(ResetTokenTTL),
		CreatedAt: now,
	}
	if err := uc.tokens.Create(ctx, t); err != nil {
		return nil, err
	}

	if err := uc.send(ctx, t, in.RedirectURL); err != nil && uc.observer != nil {
		uc.observer.NotificationFailed(ctx, ChannelEmail, err)
	}

	return &dto.ForgotPasswordResult{Token: t.Token, Email: t.Email, ExpiresAt: t.ExpiresAt}, nil
}

// send convierte un panic del mailer en error para que el envío siga siendo best-effort.
func (uc *ForgotPasswordUseCase) send(ctx context.Context, t *entity.PasswordResetToken, redirectURL *string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mailer panic: %v", r)
		}
	}()
	return uc.mailer.SendPasswordReset(ctx, t.Email, t.Token, redirectURL)
}

func newResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generar token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
