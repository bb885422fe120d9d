package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// OrderRequest cuerpo de POST /orders: se compran las líneas marcadas del carrito.
type OrderRequest struct {
	AddressID int64  `json:"addressId"`
	Remark    string `json:"remark,omitempty"`
}

// OrderAPI colaborador de /orders.
type OrderAPI struct {
	c Caller
}

// NewOrderAPI construye el colaborador.
func NewOrderAPI(c Caller) *OrderAPI {
	return &OrderAPI{c: c}
}

// Create POST /orders.
func (a *OrderAPI) Create(ctx context.Context, in OrderRequest) (*entity.Order, error) {
	var out entity.Order
	if err := a.c.Call(ctx, http.MethodPost, "/orders", in, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List GET /orders?page&size.
func (a *OrderAPI) List(ctx context.Context, q PageQuery) (*entity.Page[entity.Order], error) {
	return orderPage(ctx, a.c, "/orders", q)
}

// ByStatus GET /orders/status/{status}.
func (a *OrderAPI) ByStatus(ctx context.Context, status string, q PageQuery) (*entity.Page[entity.Order], error) {
	return orderPage(ctx, a.c, pathf("/orders/status/%s", status), q)
}

// Get GET /orders/{orderNo}.
func (a *OrderAPI) Get(ctx context.Context, orderNo string) (*entity.Order, error) {
	return getOrder(ctx, a.c, pathf("/orders/%s", orderNo))
}

// Cancel PUT /orders/{orderNo}/cancel.
func (a *OrderAPI) Cancel(ctx context.Context, orderNo string) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/orders/%s/cancel", orderNo), nil, nil, nil)
}

// Confirm PUT /orders/{orderNo}/confirm (confirmar recepción).
func (a *OrderAPI) Confirm(ctx context.Context, orderNo string) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/orders/%s/confirm", orderNo), nil, nil, nil)
}

func orderPage(ctx context.Context, c Caller, path string, q PageQuery) (*entity.Page[entity.Order], error) {
	var out entity.Page[entity.Order]
	if err := c.Call(ctx, http.MethodGet, path, nil, q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func getOrder(ctx context.Context, c Caller, path string) (*entity.Order, error) {
	var out entity.Order
	if err := c.Call(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PaymentAPI colaborador de /payment.
type PaymentAPI struct {
	c Caller
}

// NewPaymentAPI construye el colaborador.
func NewPaymentAPI(c Caller) *PaymentAPI {
	return &PaymentAPI{c: c}
}

type payRequest struct {
	OrderNo       string `json:"orderNo"`
	PaymentMethod string `json:"paymentMethod"`
}

// Pay POST /payment/pay.
func (a *PaymentAPI) Pay(ctx context.Context, orderNo, method string) (*entity.Payment, error) {
	var out entity.Payment
	if err := a.c.Call(ctx, http.MethodPost, "/payment/pay", payRequest{OrderNo: orderNo, PaymentMethod: method}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Callback POST /payment/callback (notificación simulada del proveedor).
func (a *PaymentAPI) Callback(ctx context.Context, payload map[string]string) error {
	return a.c.Call(ctx, http.MethodPost, "/payment/callback", payload, nil, nil)
}
