package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
)

// AuthHandler login y recuperación de contraseña (público).
type AuthHandler struct {
	login  *auth.LoginUseCase
	forgot *auth.ForgotPasswordUseCase
	reset  *auth.ResetPasswordUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(login *auth.LoginUseCase, forgot *auth.ForgotPasswordUseCase, reset *auth.ResetPasswordUseCase) *AuthHandler {
	return &AuthHandler{login: login, forgot: forgot, reset: reset}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email y password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	in.IP = c.IP()
	in.UserAgent = c.Get(fiber.HeaderUserAgent)
	out, err := h.login.Execute(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ForgotPassword godoc
// @Summary      Solicitar recuperación de contraseña
// @Description  Genera un token de un solo uso (1 hora) y lo envía por correo. El token nunca se devuelve en la respuesta.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email y redirect_url opcional"
// @Success      202   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if _, err := h.forgot.Execute(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.MessageResponse{Message: "si el email está registrado recibirás un enlace de recuperación"})
}

// ResetPassword godoc
// @Summary      Restablecer contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "email, token y nueva contraseña"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.reset.Execute(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}
