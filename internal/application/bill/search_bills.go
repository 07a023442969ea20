package bill

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// SearchBillsUseCase lista las cuentas de la organización (lista plana).
type SearchBillsUseCase struct {
	repo repository.BillRepository
}

// NewSearchBillsUseCase construye el caso de uso.
func NewSearchBillsUseCase(repo repository.BillRepository) *SearchBillsUseCase {
	return &SearchBillsUseCase{repo: repo}
}

// Execute devuelve las cuentas de la organización.
func (uc *SearchBillsUseCase) Execute(ctx context.Context, organizationID string) ([]dto.BillResponse, error) {
	list, err := uc.repo.FindByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BillResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBillResponse(b))
	}
	return out, nil
}
