package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mall-client/internal/application/usecase"
)

// CatalogHandler maneja /products y /categories (públicos).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List GET /products?page&size&keyword&categoryId.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	return h.page(c, c.Query("keyword"), int64(c.QueryInt("categoryId", 0)))
}

// Search GET /products/search?keyword=.
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	return h.page(c, c.Query("keyword"), 0)
}

// ByCategory GET /products/category/:id.
func (h *CatalogHandler) ByCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid parameter")
	}
	return h.page(c, "", int64(id))
}

// Get GET /products/:id.
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid parameter")
	}
	p, err := h.uc.Product(int64(id))
	if err != nil {
		return businessError(c, err, CodeProductNotFound)
	}
	return ok(c, p)
}

// Categories GET /categories.
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	list, err := h.uc.Categories()
	if err != nil {
		return businessError(c, err, CodeNotFound)
	}
	return ok(c, list)
}

// Category GET /categories/:id.
func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid parameter")
	}
	cat, err := h.uc.Category(int64(id))
	if err != nil {
		return businessError(c, err, CodeNotFound)
	}
	return ok(c, cat)
}

func (h *CatalogHandler) page(c *fiber.Ctx, keyword string, categoryID int64) error {
	out, err := h.uc.Products(keyword, categoryID, c.QueryInt("page", 1), c.QueryInt("size", usecase.DefaultPageSize))
	if err != nil {
		return businessError(c, err, CodeProductNotFound)
	}
	return ok(c, out)
}
