package wallet

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// DeleteWalletUseCase elimina una billetera y devuelve la fila eliminada.
type DeleteWalletUseCase struct {
	repo repository.WalletRepository
}

// NewDeleteWalletUseCase construye el caso de uso.
func NewDeleteWalletUseCase(repo repository.WalletRepository) *DeleteWalletUseCase {
	return &DeleteWalletUseCase{repo: repo}
}

// Execute busca y luego elimina. ErrWalletNotFound si no existe en la organización.
func (uc *DeleteWalletUseCase) Execute(ctx context.Context, organizationID, id string) (*dto.WalletResponse, error) {
	current, err := uc.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrWalletNotFound
	}
	deleted, err := uc.repo.Delete(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.ErrWalletNotFound
	}
	out := toWalletResponse(deleted)
	return &out, nil
}
