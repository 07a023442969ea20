// Package bill contiene los casos de uso de cuentas por pagar.
//
// Ciclo de vida: creada (paid=false) -> MarkAsPaid(true|false) -> eliminada.
// MarkAsPaid y Delete exigen que la cuenta exista en la organización.
package bill

import (
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

func toBillResponse(b *entity.Bill) dto.BillResponse {
	return dto.BillResponse{
		ID:             b.ID,
		OrganizationID: b.OrganizationID,
		Description:    b.Description,
		Amount:         b.Amount,
		DueDate:        b.DueDate,
		Paid:           b.Paid,
		CategoryID:     b.CategoryID,
		WalletID:       b.WalletID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
