package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/bill"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
)

// BillHandler cuentas por pagar (protegido).
type BillHandler struct {
	create *bill.CreateBillUseCase
	paid   *bill.MarkBillAsPaidUseCase
	delete *bill.DeleteBillUseCase
	search *bill.SearchBillsUseCase
}

// NewBillHandler construye el handler.
func NewBillHandler(create *bill.CreateBillUseCase, paid *bill.MarkBillAsPaidUseCase, del *bill.DeleteBillUseCase, search *bill.SearchBillsUseCase) *BillHandler {
	return &BillHandler{create: create, paid: paid, delete: del, search: search}
}

// Create godoc
// @Summary      Crear cuenta por pagar
// @Tags         bills
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBillRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bills [post]
func (h *BillHandler) Create(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.CreateBillRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.create.Execute(c.UserContext(), organizationID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MarkAsPaid godoc
// @Summary      Marcar cuenta como pagada o pendiente
// @Tags         bills
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la cuenta"
// @Param        body  body  dto.MarkBillAsPaidRequest  true  "Valor de paid"
// @Success      200   {object}  dto.BillResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bills/{id}/paid [patch]
func (h *BillHandler) MarkAsPaid(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.MarkBillAsPaidRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.paid.Execute(c.UserContext(), organizationID, c.Params("id"), *in.Paid)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cuenta por pagar
// @Tags         bills
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [delete]
func (h *BillHandler) Delete(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	if err := h.delete.Execute(c.UserContext(), organizationID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar cuentas por pagar
// @Tags         bills
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BillResponse
// @Router       /api/bills [get]
func (h *BillHandler) List(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	out, err := h.search.Execute(c.UserContext(), organizationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
