package bill

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// MarkBillAsPaidUseCase fija el flag paid a un valor explícito.
type MarkBillAsPaidUseCase struct {
	repo repository.BillRepository
}

// NewMarkBillAsPaidUseCase construye el caso de uso.
func NewMarkBillAsPaidUseCase(repo repository.BillRepository) *MarkBillAsPaidUseCase {
	return &MarkBillAsPaidUseCase{repo: repo}
}

// Execute busca la cuenta y escribe paid. ErrBillNotFound si no existe.
func (uc *MarkBillAsPaidUseCase) Execute(ctx context.Context, organizationID, id string, paid bool) (*dto.BillResponse, error) {
	current, err := uc.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrBillNotFound
	}
	updated, err := uc.repo.UpdatePaid(ctx, organizationID, id, paid)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrBillNotFound
	}
	out := toBillResponse(updated)
	return &out, nil
}
