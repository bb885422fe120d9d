package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// AdminAPI colaborador de /admin/* (requiere rol ADMIN en el servidor).
type AdminAPI struct {
	c Caller
}

// NewAdminAPI construye el colaborador.
func NewAdminAPI(c Caller) *AdminAPI {
	return &AdminAPI{c: c}
}

// Products GET /admin/products.
func (a *AdminAPI) Products(ctx context.Context, q PageQuery) (*entity.Page[entity.Product], error) {
	var out entity.Page[entity.Product]
	if err := a.c.Call(ctx, http.MethodGet, "/admin/products", nil, q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct POST /admin/products.
func (a *AdminAPI) CreateProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	var out entity.Product
	if err := a.c.Call(ctx, http.MethodPost, "/admin/products", p, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct PUT /admin/products/{id}.
func (a *AdminAPI) UpdateProduct(ctx context.Context, id int64, p entity.Product) (*entity.Product, error) {
	var out entity.Product
	if err := a.c.Call(ctx, http.MethodPut, pathf("/admin/products/%d", id), p, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct DELETE /admin/products/{id}.
func (a *AdminAPI) DeleteProduct(ctx context.Context, id int64) error {
	return a.c.Call(ctx, http.MethodDelete, pathf("/admin/products/%d", id), nil, nil, nil)
}

// SetProductStatus PUT /admin/products/{id}/status?status=0|1.
func (a *AdminAPI) SetProductStatus(ctx context.Context, id int64, status int) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/admin/products/%d/status", id), nil, single("status", strconv.Itoa(status)), nil)
}

// SetProductStock PUT /admin/products/{id}/stock?stock=N.
func (a *AdminAPI) SetProductStock(ctx context.Context, id int64, stock int) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/admin/products/%d/stock", id), nil, single("stock", strconv.Itoa(stock)), nil)
}

// CreateCategory POST /admin/categories.
func (a *AdminAPI) CreateCategory(ctx context.Context, c entity.Category) (*entity.Category, error) {
	var out entity.Category
	if err := a.c.Call(ctx, http.MethodPost, "/admin/categories", c, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory PUT /admin/categories/{id}.
func (a *AdminAPI) UpdateCategory(ctx context.Context, id int64, c entity.Category) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/admin/categories/%d", id), c, nil, nil)
}

// DeleteCategory DELETE /admin/categories/{id}.
func (a *AdminAPI) DeleteCategory(ctx context.Context, id int64) error {
	return a.c.Call(ctx, http.MethodDelete, pathf("/admin/categories/%d", id), nil, nil, nil)
}

// Orders GET /admin/orders.
func (a *AdminAPI) Orders(ctx context.Context, q PageQuery) (*entity.Page[entity.Order], error) {
	return orderPage(ctx, a.c, "/admin/orders", q)
}

// OrdersByStatus GET /admin/orders/status/{status}.
func (a *AdminAPI) OrdersByStatus(ctx context.Context, status string, q PageQuery) (*entity.Page[entity.Order], error) {
	return orderPage(ctx, a.c, pathf("/admin/orders/status/%s", status), q)
}

// Order GET /admin/orders/{orderNo}.
func (a *AdminAPI) Order(ctx context.Context, orderNo string) (*entity.Order, error) {
	return getOrder(ctx, a.c, pathf("/admin/orders/%s", orderNo))
}

// ShipOrder PUT /admin/orders/{orderNo}/ship.
func (a *AdminAPI) ShipOrder(ctx context.Context, orderNo string) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/admin/orders/%s/ship", orderNo), nil, nil, nil)
}

// CancelOrder PUT /admin/orders/{orderNo}/cancel.
func (a *AdminAPI) CancelOrder(ctx context.Context, orderNo string) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/admin/orders/%s/cancel", orderNo), nil, nil, nil)
}

// Users GET /admin/users.
func (a *AdminAPI) Users(ctx context.Context, q PageQuery) (*entity.Page[entity.UserProfile], error) {
	var out entity.Page[entity.UserProfile]
	if err := a.c.Call(ctx, http.MethodGet, "/admin/users", nil, q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetUserStatus PUT /admin/users/{id}/status?status=0|1.
func (a *AdminAPI) SetUserStatus(ctx context.Context, id int64, status int) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/admin/users/%d/status", id), nil, single("status", strconv.Itoa(status)), nil)
}

// SetUserRole PUT /admin/users/{id}/role?role=USER|ADMIN.
func (a *AdminAPI) SetUserRole(ctx context.Context, id int64, role entity.Role) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/admin/users/%d/role", id), nil, single("role", string(role)), nil)
}
