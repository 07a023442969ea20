package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/suggestion"
)

// SuggestionHandler sugerencias de los usuarios (protegido).
type SuggestionHandler struct {
	create *suggestion.CreateSuggestionUseCase
	search *suggestion.SearchSuggestionsUseCase
}

// NewSuggestionHandler construye el handler.
func NewSuggestionHandler(create *suggestion.CreateSuggestionUseCase, search *suggestion.SearchSuggestionsUseCase) *SuggestionHandler {
	return &SuggestionHandler{create: create, search: search}
}

// Create godoc
// @Summary      Enviar sugerencia
// @Tags         suggestions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSuggestionRequest  true  "Datos"
// @Success      201   {object}  dto.SuggestionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suggestions [post]
func (h *SuggestionHandler) Create(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.CreateSuggestionRequest
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
// @Summary      Listar sugerencias
// @Tags         suggestions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SuggestionResponse
// @Router       /api/suggestions [get]
func (h *SuggestionHandler) List(c *fiber.Ctx) error {
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
