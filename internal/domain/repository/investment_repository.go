package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// InvestmentRepository define el puerto de persistencia para Investment.
type InvestmentRepository interface {
	Create(ctx context.Context, investment *entity.Investment) (*entity.Investment, error)
	FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Investment, error)
}
