package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/investment"
)

// InvestmentHandler inversiones de la organización (protegido).
type InvestmentHandler struct {
	create *investment.CreateInvestmentUseCase
	search *investment.SearchInvestmentsUseCase
}

// NewInvestmentHandler construye el handler.
func NewInvestmentHandler(create *investment.CreateInvestmentUseCase, search *investment.SearchInvestmentsUseCase) *InvestmentHandler {
	return &InvestmentHandler{create: create, search: search}
}

// Create godoc
// @Summary      Registrar inversión
// @Tags         investments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvestmentRequest  true  "Datos"
// @Success      201   {object}  dto.InvestmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/investments [post]
func (h *InvestmentHandler) Create(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.CreateInvestmentRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.create.Execute(c.UserContext(), organizationID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar inversiones
// @Tags         investments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InvestmentResponse
// @Router       /api/investments [get]
func (h *InvestmentHandler) List(c *fiber.Ctx) error {
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
