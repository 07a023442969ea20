package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
// La implementación vive en infrastructure.
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) (*entity.Organization, error)
	FindByID(ctx context.Context, id string) (*entity.Organization, error)
	FindByEmail(ctx context.Context, email string) (*entity.Organization, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
