package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/organization"
)

// OrganizationHandler alta de organizaciones (público).
type OrganizationHandler struct {
	create *organization.CreateOrganizationUseCase
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(create *organization.CreateOrganizationUseCase) *OrganizationHandler {
	return &OrganizationHandler{create: create}
}

// Create godoc
// @Summary      Crear organización
// @Description  Idempotente por email: si ya existe devuelve la existente.
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrganizationRequest  true  "Datos de la organización"
// @Success      201   {object}  dto.CreateOrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/organizations [post]
func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrganizationRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.create.Execute(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
