package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/goal"
)

// GoalHandler metas de ahorro (protegido).
type GoalHandler struct {
	create *goal.CreateGoalUseCase
	update *goal.UpdateGoalUseCase
	delete *goal.DeleteGoalUseCase
	search *goal.SearchGoalsUseCase
}

// NewGoalHandler construye el handler.
func NewGoalHandler(create *goal.CreateGoalUseCase, update *goal.UpdateGoalUseCase, del *goal.DeleteGoalUseCase, search *goal.SearchGoalsUseCase) *GoalHandler {
	return &GoalHandler{create: create, update: update, delete: del, search: search}
}

// Create godoc
// @Summary      Crear meta
// @Tags         goals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGoalRequest  true  "Datos de la meta"
// @Success      201   {object}  dto.GoalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/goals [post]
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.CreateGoalRequest
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
// @Summary      Actualizar meta
// @Tags         goals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la meta"
// @Param        body  body  dto.UpdateGoalRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.GoalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/goals/{id} [put]
func (h *GoalHandler) Update(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.UpdateGoalRequest
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
// @Summary      Eliminar meta
// @Tags         goals
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la meta"
// @Success      200  {object}  dto.GoalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/goals/{id} [delete]
func (h *GoalHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Listar metas
// @Tags         goals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GoalResponse
// @Router       /api/goals [get]
func (h *GoalHandler) List(c *fiber.Ctx) error {
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
