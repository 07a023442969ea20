package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/pkg/jwt"
)

// Locals keys para la organización autenticada en Fiber.
const (
	LocalOrganizationID = "organization_id"
	LocalEmail          = "email"
)

// AuthMiddleware valida el Bearer Token JWT y carga organization_id y email en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		organizationID, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalOrganizationID, organizationID)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetOrganizationID devuelve la organización del token (después del middleware de auth).
func GetOrganizationID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalOrganizationID).(string)
	return s
}

// GetEmail devuelve el email del token.
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// requireOrganization responde 401 si no hay organización en el contexto.
func requireOrganization(c *fiber.Ctx) (string, bool) {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
		return "", false
	}
	return organizationID, true
}
