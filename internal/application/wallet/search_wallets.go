package wallet

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// SearchWalletsUseCase lista las billeteras de la organización.
type SearchWalletsUseCase struct {
	repo repository.WalletRepository
}

// NewSearchWalletsUseCase construye el caso de uso.
func NewSearchWalletsUseCase(repo repository.WalletRepository) *SearchWalletsUseCase {
	return &SearchWalletsUseCase{repo: repo}
}

// Execute devuelve {wallets: [...]}.
func (uc *SearchWalletsUseCase) Execute(ctx context.Context, organizationID string) (*dto.WalletListResponse, error) {
	list, err := uc.repo.FindByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WalletResponse, 0, len(list))
	for _, w := range list {
		items = append(items, toWalletResponse(w))
	}
	return &dto.WalletListResponse{Wallets: items}, nil
}
