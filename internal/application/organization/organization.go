// Package organization casos de uso de organizaciones (el tenant de todos los demás datos).
package organization

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/pkg/password"
)

// NewResponse proyecta la organización sin exponer el hash de contraseña.
func NewResponse(o *entity.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Image:     o.Image,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// CreateOrganizationUseCase alta idempotente por email.
type CreateOrganizationUseCase struct {
	repo   repository.OrganizationRepository
	hasher password.Hasher
}

// NewCreateOrganizationUseCase construye el caso de uso.
func NewCreateOrganizationUseCase(repo repository.OrganizationRepository, hasher password.Hasher) *CreateOrganizationUseCase {
	return &CreateOrganizationUseCase{repo: repo, hasher: hasher}
}

// Execute devuelve la organización existente si el email ya está registrado (sin insertar ni
// hashear). En ambos casos Created es true.
func (uc *CreateOrganizationUseCase) Execute(ctx context.Context, in dto.CreateOrganizationRequest) (*dto.CreateOrganizationResponse, error) {
	email := entity.NormalizeEmail(in.Email)
	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.CreateOrganizationResponse{Organization: NewResponse(existing), Created: true}, nil
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, &entity.Organization{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Image:        in.Image,
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateOrganizationResponse{Organization: NewResponse(created), Created: true}, nil
}
