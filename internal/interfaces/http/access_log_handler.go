package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/accesslog"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
)

// AccessLogHandler bitácora de accesos (protegido).
type AccessLogHandler struct {
	create *accesslog.CreateAccessLogUseCase
	search *accesslog.SearchAccessLogsUseCase
}

// NewAccessLogHandler construye el handler.
func NewAccessLogHandler(create *accesslog.CreateAccessLogUseCase, search *accesslog.SearchAccessLogsUseCase) *AccessLogHandler {
	return &AccessLogHandler{create: create, search: search}
}

// Create godoc
// @Summary      Registrar acceso
// @Tags         access-logs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccessLogRequest  true  "Datos"
// @Success      201   {object}  dto.AccessLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/access-logs [post]
func (h *AccessLogHandler) Create(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.CreateAccessLogRequest
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
// @Summary      Listar accesos (más recientes primero)
// @Tags         access-logs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AccessLogResponse
// @Router       /api/access-logs [get]
func (h *AccessLogHandler) List(c *fiber.Ctx) error {
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
