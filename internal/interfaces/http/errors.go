package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
)

// LocalError guarda el error interno de la petición para el request logger.
const LocalError = "error"

// respondError traduce errores de dominio a status HTTP.
func respondError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		c.Locals(LocalError, err)
		msg = "error interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidResetToken):
		return fiber.StatusConflict, "INVALID_RESET_TOKEN"
	case errors.Is(err, domain.ErrOrganizationAlreadyExists):
		return fiber.StatusConflict, "ORGANIZATION_EXISTS"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}
