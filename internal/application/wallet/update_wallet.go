package wallet

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// UpdateWalletUseCase actualización parcial de una billetera.
type UpdateWalletUseCase struct {
	repo repository.WalletRepository
}

// NewUpdateWalletUseCase construye el caso de uso.
func NewUpdateWalletUseCase(repo repository.WalletRepository) *UpdateWalletUseCase {
	return &UpdateWalletUseCase{repo: repo}
}

// Execute verifica que la billetera exista en la organización y aplica solo los campos presentes.
// Un request vacío no escribe y devuelve la billetera sin cambios.
func (uc *UpdateWalletUseCase) Execute(ctx context.Context, organizationID, id string, in dto.UpdateWalletRequest) (*dto.WalletResponse, error) {
	current, err := uc.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrWalletNotFound
	}
	patch := entity.WalletPatch{Name: in.Name, Balance: in.Balance}
	if patch.IsEmpty() {
		out := toWalletResponse(current)
		return &out, nil
	}
	updated, err := uc.repo.Update(ctx, organizationID, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// eliminada entre la lectura y la escritura
		return nil, domain.ErrWalletNotFound
	}
	out := toWalletResponse(updated)
	return &out, nil
}
