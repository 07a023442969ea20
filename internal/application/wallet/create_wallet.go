package wallet

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// CreateWalletUseCase crea una billetera para la organización.
type CreateWalletUseCase struct {
	repo repository.WalletRepository
}

// NewCreateWalletUseCase construye el caso de uso.
func NewCreateWalletUseCase(repo repository.WalletRepository) *CreateWalletUseCase {
	return &CreateWalletUseCase{repo: repo}
}

// Execute persiste la billetera. Balance ausente inicia en 0.
func (uc *CreateWalletUseCase) Execute(ctx context.Context, organizationID string, in dto.CreateWalletRequest) (*dto.WalletResponse, error) {
	balance := decimal.Zero
	if in.Balance != nil {
		balance = *in.Balance
	}
	created, err := uc.repo.Create(ctx, &entity.Wallet{
		OrganizationID: organizationID,
		Name:           in.Name,
		Balance:        balance,
	})
	if err != nil {
		return nil, err
	}
	out := toWalletResponse(created)
	return &out, nil
}
