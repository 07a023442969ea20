package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.User, error)
}
