package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/company"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/cache"
)

// CompanyHandler bancos e instituciones financieras (protegido).
// Toda mutación exitosa invalida la partición "banks".
type CompanyHandler struct {
	create     *company.CreateCompanyUseCase
	importMany *company.ImportCompaniesUseCase
	search     *company.SearchCompaniesUseCase
	cache      *partitions
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(create *company.CreateCompanyUseCase, importMany *company.ImportCompaniesUseCase, search *company.SearchCompaniesUseCase, p *partitions) *CompanyHandler {
	return &CompanyHandler{create: create, importMany: importMany, search: search, cache: p}
}

// Create godoc
// @Summary      Registrar banco
// @Tags         banks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la institución"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/banks [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.CreateCompanyRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.create.Execute(c.UserContext(), organizationID, in)
	if err != nil {
		return respondError(c, err)
	}
	h.cache.invalidate(c, cache.PartitionBanks)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Import godoc
// @Summary      Importar bancos
// @Description  Idempotente: las instituciones con nombre existente se omiten.
// @Tags         banks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportCompaniesRequest  true  "Ítems"
// @Success      200   {object}  dto.BatchResponse
// @Router       /api/banks/import [post]
func (h *CompanyHandler) Import(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.ImportCompaniesRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.importMany.Execute(c.UserContext(), organizationID, in)
	if err != nil {
		return respondError(c, err)
	}
	h.cache.invalidate(c, cache.PartitionBanks)
	return c.JSON(out)
}

// List godoc
// @Summary      Listar bancos
// @Tags         banks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/banks [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	return h.cache.serve(c, cache.PartitionBanks, organizationID, func() (interface{}, error) {
		return h.search.Execute(c.UserContext(), organizationID)
	})
}
