package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (bancos e instituciones).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) (*entity.Company, error)
	// CreateMany omite las instituciones cuyo (organization_id, name) ya existe.
	CreateMany(ctx context.Context, companies []*entity.Company) (BatchResult, error)
	FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Company, error)
}
