package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/infrastructure/gateway"
)

// CartItemDTO línea del carrito en el wire (checked como 0/1).
type CartItemDTO struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage,omitempty"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	ProductStock int             `json:"productStock"`
	Quantity     int             `json:"quantity"`
	Checked      gateway.Flag    `json:"checked"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// ToEntity convierte al modelo en memoria.
func (d CartItemDTO) ToEntity() entity.CartItem {
	return entity.CartItem{
		ID:           d.ID,
		ProductID:    d.ProductID,
		ProductName:  d.ProductName,
		ProductImage: d.ProductImage,
		ProductPrice: d.ProductPrice,
		ProductStock: d.ProductStock,
		Quantity:     d.Quantity,
		Checked:      d.Checked.Bool(),
	}
}

// CartItemFromEntity convierte al formato del wire.
func CartItemFromEntity(it entity.CartItem) CartItemDTO {
	return CartItemDTO{
		ID:           it.ID,
		ProductID:    it.ProductID,
		ProductName:  it.ProductName,
		ProductImage: it.ProductImage,
		ProductPrice: it.ProductPrice,
		ProductStock: it.ProductStock,
		Quantity:     it.Quantity,
		Checked:      gateway.Flag(it.Checked),
		Subtotal:     it.Subtotal(),
	}
}

// CartAddRequest cuerpo de POST /cart.
type CartAddRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartAPI colaborador de /cart.
type CartAPI struct {
	c Caller
}

// NewCartAPI construye el colaborador.
func NewCartAPI(c Caller) *CartAPI {
	return &CartAPI{c: c}
}

// List GET /cart.
func (a *CartAPI) List(ctx context.Context) ([]entity.CartItem, error) {
	var out []CartItemDTO
	if err := a.c.Call(ctx, http.MethodGet, "/cart", nil, nil, &out); err != nil {
		return nil, err
	}
	items := make([]entity.CartItem, 0, len(out))
	for _, d := range out {
		items = append(items, d.ToEntity())
	}
	return items, nil
}

// Add POST /cart.
func (a *CartAPI) Add(ctx context.Context, productID int64, quantity int) error {
	return a.c.Call(ctx, http.MethodPost, "/cart", CartAddRequest{ProductID: productID, Quantity: quantity}, nil, nil)
}

// UpdateQuantity PUT /cart/{id}/quantity?quantity=N. La línea que devuelve el servidor se descarta.
func (a *CartAPI) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/cart/%d/quantity", id), nil, single("quantity", strconv.Itoa(quantity)), nil)
}

// Remove DELETE /cart/{id}.
func (a *CartAPI) Remove(ctx context.Context, id int64) error {
	return a.c.Call(ctx, http.MethodDelete, pathf("/cart/%d", id), nil, nil, nil)
}

// SetChecked PUT /cart/{id}/checked?checked=0|1.
func (a *CartAPI) SetChecked(ctx context.Context, id int64, checked bool) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/cart/%d/checked", id), nil, single("checked", gateway.Flag(checked).Param()), nil)
}

// SetAllChecked PUT /cart/checked?checked=0|1.
func (a *CartAPI) SetAllChecked(ctx context.Context, checked bool) error {
	return a.c.Call(ctx, http.MethodPut, "/cart/checked", nil, single("checked", gateway.Flag(checked).Param()), nil)
}
