// Package wallet contiene los casos de uso de billeteras de una organización.
package wallet

import (
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

func toWalletResponse(w *entity.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		ID:             w.ID,
		OrganizationID: w.OrganizationID,
		Name:           w.Name,
		Balance:        w.Balance,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}
