package bill

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// DeleteBillUseCase elimina una cuenta por pagar.
type DeleteBillUseCase struct {
	repo repository.BillRepository
}

// NewDeleteBillUseCase construye el caso de uso.
func NewDeleteBillUseCase(repo repository.BillRepository) *DeleteBillUseCase {
	return &DeleteBillUseCase{repo: repo}
}

// Execute verifica existencia antes de eliminar; si no existe no emite el DELETE.
func (uc *DeleteBillUseCase) Execute(ctx context.Context, organizationID, id string) error {
	current, err := uc.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrBillNotFound
	}
	return uc.repo.Delete(ctx, organizationID, id)
}
