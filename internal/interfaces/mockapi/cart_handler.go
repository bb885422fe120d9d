package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mall-client/internal/domain/repository"
	"github.com/jhoicas/mall-client/internal/infrastructure/api"
)

// CartHandler maneja /cart. Las líneas salen con el DTO del cliente (checked 0/1).
type CartHandler struct {
	repo repository.CartRepository
}

func NewCartHandler(repo repository.CartRepository) *CartHandler {
	return &CartHandler{repo: repo}
}

// List GET /cart.
func (h *CartHandler) List(c *fiber.Ctx) error {
	items, err := h.repo.ListByUser(GetUserID(c))
	if err != nil {
		return businessError(c, err, CodeCartItemNotFound)
	}
	out := make([]api.CartItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, api.CartItemFromEntity(it))
	}
	return ok(c, out)
}

// Add POST /cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in api.CartAddRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Bad request")
	}
	it, err := h.repo.Add(GetUserID(c), in.ProductID, in.Quantity)
	if err != nil {
		return businessError(c, err, CodeProductNotFound)
	}
	return ok(c, api.CartItemFromEntity(*it))
}

// UpdateQuantity PUT /cart/:id/quantity?quantity=N.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid parameter")
	}
	it, err := h.repo.UpdateQuantity(GetUserID(c), int64(id), c.QueryInt("quantity", 0))
	if err != nil {
		return businessError(c, err, CodeCartItemNotFound)
	}
	return ok(c, api.CartItemFromEntity(*it))
}

// Delete DELETE /cart/:id.
func (h *CartHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid parameter")
	}
	if err := h.repo.Delete(GetUserID(c), int64(id)); err != nil {
		return businessError(c, err, CodeCartItemNotFound)
	}
	return ok(c, nil)
}

// SetChecked PUT /cart/:id/checked?checked=0|1.
func (h *CartHandler) SetChecked(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid parameter")
	}
	checked, valid := checkedParam(c)
	if !valid {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid parameter")
	}
	if err := h.repo.SetChecked(GetUserID(c), int64(id), checked); err != nil {
		return businessError(c, err, CodeCartItemNotFound)
	}
	return ok(c, nil)
}

// SetAllChecked PUT /cart/checked?checked=0|1.
func (h *CartHandler) SetAllChecked(c *fiber.Ctx) error {
	checked, valid := checkedParam(c)
	if !valid {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid parameter")
	}
	if err := h.repo.SetAllChecked(GetUserID(c), checked); err != nil {
		return businessError(c, err, CodeCartItemNotFound)
	}
	return ok(c, nil)
}

// checkedParam solo acepta el entero del wire: 0 o 1.
func checkedParam(c *fiber.Ctx) (bool, bool) {
	switch c.Query("checked") {
	case "1":
		return true, true
	case "0":
		return false, true
	default:
		return false, false
	}
}
