package auth

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/organization"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/pkg/jwt"
	"github.com/jhoicas/Finanzas-api/pkg/password"
)

// LoginUseCase autentica la organización y registra el acceso.
type LoginUseCase struct {
	orgs   repository.OrganizationRepository
	logs   repository.AccessLogRepository
	hasher password.Hasher
	jwtCfg JWTConfig
}

// NewLoginUseCase construye el caso de uso.
func NewLoginUseCase(orgs repository.OrganizationRepository, logs repository.AccessLogRepository, hasher password.Hasher, jwtCfg JWTConfig) *LoginUseCase {
	return &LoginUseCase{orgs: orgs, logs: logs, hasher: hasher, jwtCfg: jwtCfg}
}

// Execute verifica email/password, genera JWT y deja un registro "login" en access_logs.
// Email desconocido y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *LoginUseCase) Execute(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	org, err := uc.orgs.FindByEmail(ctx, entity.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.hasher.Compare(org.PasswordHash, in.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, org.ID, org.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if _, err := uc.logs.Create(ctx, &entity.AccessLog{
		OrganizationID: org.ID,
		Action:         entity.AccessActionLogin,
		IP:             in.IP,
		UserAgent:      in.UserAgent,
	}); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Organization: organization.NewResponse(org)}, nil
}
