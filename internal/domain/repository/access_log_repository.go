package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// AccessLogRepository define el puerto de persistencia para AccessLog.
type AccessLogRepository interface {
	Create(ctx context.Context, log *entity.AccessLog) (*entity.AccessLog, error)
	// FindByOrganizationID devuelve los registros del más reciente al más antiguo.
	FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.AccessLog, error)
}
