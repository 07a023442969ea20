package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// GoalRepository define el puerto de persistencia para Goal.
type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) (*entity.Goal, error)
	FindByID(ctx context.Context, organizationID, id string) (*entity.Goal, error)
	FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Goal, error)
	Update(ctx context.Context, organizationID, id string, patch entity.GoalPatch) (*entity.Goal, error)
	Delete(ctx context.Context, organizationID, id string) (*entity.Goal, error)
}
