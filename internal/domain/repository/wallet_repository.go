package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// WalletRepository define el puerto de persistencia para Wallet. Toda operación va acotada por organización.
type WalletRepository interface {
	Create(ctx context.Context, wallet *entity.Wallet) (*entity.Wallet, error)
	FindByID(ctx context.Context, organizationID, id string) (*entity.Wallet, error)
	FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Wallet, error)
	// Update solo modifica los campos no nil del patch.
	Update(ctx context.Context, organizationID, id string, patch entity.WalletPatch) (*entity.Wallet, error)
	// Delete devuelve la fila eliminada.
	Delete(ctx context.Context, organizationID, id string) (*entity.Wallet, error)
}
