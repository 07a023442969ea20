package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// BillRepository define el puerto de persistencia para Bill.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) (*entity.Bill, error)
	FindByID(ctx context.Context, organizationID, id string) (*entity.Bill, error)
	FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Bill, error)
	UpdatePaid(ctx context.Context, organizationID, id string, paid bool) (*entity.Bill, error)
	Delete(ctx context.Context, organizationID, id string) error
}
