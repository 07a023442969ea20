package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/wallet"
)

// WalletHandler billeteras de la organización (protegido).
type WalletHandler struct {
	create *wallet.CreateWalletUseCase
	update *wallet.UpdateWalletUseCase
	delete *wallet.DeleteWalletUseCase
	search *wallet.SearchWalletsUseCase
}

// NewWalletHandler construye el handler.
func NewWalletHandler(create *wallet.CreateWalletUseCase, update *wallet.UpdateWalletUseCase, del *wallet.DeleteWalletUseCase, search *wallet.SearchWalletsUseCase) *WalletHandler {
	return &WalletHandler{create: create, update: update, delete: del, search: search}
}

// Create godoc
// @Summary      Crear billetera
// @Tags         wallets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWalletRequest  true  "Datos de la billetera"
// @Success      201   {object}  dto.WalletResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/wallets [post]
func (h *WalletHandler) Create(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.CreateWalletRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.create.Execute(c.UserContext(), organizationID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar billetera
// @Tags         wallets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la billetera"
// @Param        body  body  dto.UpdateWalletRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.WalletResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/wallets/{id} [put]
func (h *WalletHandler) Update(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.UpdateWalletRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.update.Execute(c.UserContext(), organizationID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar billetera
// @Tags         wallets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la billetera"
// @Success      200  {object}  dto.WalletResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/wallets/{id} [delete]
func (h *WalletHandler) Delete(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	out, err := h.delete.Execute(c.UserContext(), organizationID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar billeteras
// @Tags         wallets
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WalletListResponse
// @Router       /api/wallets [get]
func (h *WalletHandler) List(c *fiber.Ctx) error {
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
