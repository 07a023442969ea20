package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// SuggestionRepository define el puerto de persistencia para Suggestion.
type SuggestionRepository interface {
	Create(ctx context.Context, suggestion *entity.Suggestion) (*entity.Suggestion, error)
	FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Suggestion, error)
}
