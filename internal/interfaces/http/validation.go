package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseBody decodifica y valida el cuerpo. Si devuelve false la respuesta 400 ya fue escrita
// y el error devuelto es el de esa escritura.
func parseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	return true, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
