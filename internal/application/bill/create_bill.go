package bill

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// CreateBillUseCase registra una cuenta por pagar.
type CreateBillUseCase struct {
	repo repository.BillRepository
}

// NewCreateBillUseCase construye el caso de uso.
func NewCreateBillUseCase(repo repository.BillRepository) *CreateBillUseCase {
	return &CreateBillUseCase{repo: repo}
}

// Execute persiste la cuenta con paid=false.
func (uc *CreateBillUseCase) Execute(ctx context.Context, organizationID string, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	created, err := uc.repo.Create(ctx, &entity.Bill{
		OrganizationID: organizationID,
		Description:    in.Description,
		Amount:         in.Amount,
		DueDate:        in.DueDate,
		Paid:           false,
		CategoryID:     in.CategoryID,
		WalletID:       in.WalletID,
	})
	if err != nil {
		return nil, err
	}
	out := toBillResponse(created)
	return &out, nil
}
