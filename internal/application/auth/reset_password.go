package auth

import (
	"context"
	"time"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/pkg/password"
)

// ResetPasswordUseCase cambia la contraseña usando un token vigente.
type ResetPasswordUseCase struct {
	orgs   repository.OrganizationRepository
	tokens repository.PasswordResetTokenRepository
	tx     repository.TxRunner
	hasher password.Hasher
	now    func() time.Time
}

// NewResetPasswordUseCase construye el caso de uso. now nil usa time.Now.
func NewResetPasswordUseCase(orgs repository.OrganizationRepository, tokens repository.PasswordResetTokenRepository, tx repository.TxRunner, hasher password.Hasher, now func() time.Time) *ResetPasswordUseCase {
	if now == nil {
		now = time.Now
	}
	return &ResetPasswordUseCase{orgs: orgs, tokens: tokens, tx: tx, hasher: hasher, now: now}
}

// Execute valida organización y token antes de hashear. El cambio de contraseña, el consumo del
// token y el registro password_reset se escriben en una sola transacción.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, in dto.ResetPasswordRequest) error {
	email := entity.NormalizeEmail(in.Email)
	org, err := uc.orgs.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrOrganizationNotFound
	}

	t, err := uc.tokens.FindByToken(ctx, in.Token)
	if err != nil {
		return err
	}
	if t == nil || t.Email != email || !t.Valid(uc.now()) {
		return domain.ErrInvalidResetToken
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(s repository.Store) error {
		// El token se consume primero: si otra petición ya lo usó, no se toca la contraseña.
		if err := s.PasswordResetTokens.MarkUsed(ctx, t.Token); err != nil {
			return err
		}
		if err := s.Organizations.UpdatePassword(ctx, org.ID, hash); err != nil {
			return err
		}
		_, err := s.AccessLogs.Create(ctx, &entity.AccessLog{
			OrganizationID: org.ID,
			Action:         entity.AccessActionPasswordReset,
		})
		return err
	})
}
