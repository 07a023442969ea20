package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/category"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/cache"
)

// CategoryHandler categorías, subcategorías y categorías de tarjeta (protegido).
// Toda mutación exitosa invalida la partición "categories".
type CategoryHandler struct {
	create      *category.CreateCategoryUseCase
	importMany  *category.ImportCategoriesUseCase
	search      *category.SearchCategoriesUseCase
	createSub   *category.CreateSubCategoryUseCase
	importSubs  *category.ImportSubCategoriesUseCase
	searchSubs  *category.SearchSubCategoriesUseCase
	importCards *category.ImportCategoryCreditCardsUseCase
	searchCards *category.SearchCategoryCreditCardsUseCase
	cache       *partitions
}

// CategoryUseCases casos de uso que atiende CategoryHandler.
type CategoryUseCases struct {
	Create      *category.CreateCategoryUseCase
	Import      *category.ImportCategoriesUseCase
	Search      *category.SearchCategoriesUseCase
	CreateSub   *category.CreateSubCategoryUseCase
	ImportSubs  *category.ImportSubCategoriesUseCase
	SearchSubs  *category.SearchSubCategoriesUseCase
	ImportCards *category.ImportCategoryCreditCardsUseCase
	SearchCards *category.SearchCategoryCreditCardsUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc CategoryUseCases, p *partitions) *CategoryHandler {
	return &CategoryHandler{
		create:      uc.Create,
		importMany:  uc.Import,
		search:      uc.Search,
		createSub:   uc.CreateSub,
		importSubs:  uc.ImportSubs,
		searchSubs:  uc.SearchSubs,
		importCards: uc.ImportCards,
		searchCards: uc.SearchCards,
		cache:       p,
	}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.CreateCategoryRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.create.Execute(c.UserContext(), organizationID, in)
	if err != nil {
		return respondError(c, err)
	}
	h.cache.invalidate(c, cache.PartitionCategories)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Import godoc
// @Summary      Importar categorías
// @Description  Idempotente: las categorías con nombre existente se omiten.
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportCategoriesRequest  true  "Ítems"
// @Success      200   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories/import [post]
func (h *CategoryHandler) Import(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.ImportCategoriesRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.importMany.Execute(c.UserContext(), organizationID, in)
	if err != nil {
		return respondError(c, err)
	}
	h.cache.invalidate(c, cache.PartitionCategories)
	return c.JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	return h.cache.serve(c, cache.PartitionCategories, organizationID, func() (interface{}, error) {
		return h.search.Execute(c.UserContext(), organizationID)
	})
}

// CreateSubCategory godoc
// @Summary      Crear subcategoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la categoría padre"
// @Param        body  body  dto.CreateSubCategoryRequest  true  "Datos de la subcategoría"
// @Success      201   {object}  dto.SubCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/sub-categories [post]
func (h *CategoryHandler) CreateSubCategory(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.CreateSubCategoryRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.createSub.Execute(c.UserContext(), organizationID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.cache.invalidate(c, cache.PartitionCategories)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ImportSubCategories godoc
// @Summary      Importar subcategorías
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID de la categoría padre"
// @Param        body  body  dto.ImportSubCategoriesRequest  true  "Ítems"
// @Success      200   {object}  dto.BatchResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/sub-categories/import [post]
func (h *CategoryHandler) ImportSubCategories(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.ImportSubCategoriesRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.importSubs.Execute(c.UserContext(), organizationID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.cache.invalidate(c, cache.PartitionCategories)
	return c.JSON(out)
}

// ListSubCategories godoc
// @Summary      Listar subcategorías de una categoría
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.SubCategoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/sub-categories [get]
func (h *CategoryHandler) ListSubCategories(c *fiber.Ctx) error {
	organizationID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	out, err := h.searchSubs.Execute(c.UserContext(), organizationID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ImportCreditCards godoc
// @Summary      Importar categorías de tarjeta de crédito
// @Description  Tabla global compartida por todas las organizaciones.
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportCategoryCreditCardsRequest  true  "Ítems"
// @Success      200   {object}  dto.BatchResponse
// @Router       /api/credit-card-categories/import [post]
func (h *CategoryHandler) ImportCreditCards(c *fiber.Ctx) error {
	var in dto.ImportCategoryCreditCardsRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.importCards.Execute(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	h.cache.invalidate(c, cache.PartitionCategories)
	return c.JSON(out)
}

// ListCreditCards godoc
// @Summary      Listar categorías de tarjeta de crédito
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryCreditCardResponse
// @Router       /api/credit-card-categories [get]
func (h *CategoryHandler) ListCreditCards(c *fiber.Ctx) error {
	return h.cache.serve(c, cache.PartitionCategories, keyCreditCards, func() (interface{}, error) {
		return h.searchCards.Execute(c.UserContext())
	})
}
