package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/infrastructure/api"
)

// call registra una invocación al gateway.
type call struct {
	Method string
	Path   string
	Body   any
	Query  url.Values
}

// fakeCaller registra las llamadas y decodifica data en out.
type fakeCaller struct {
	calls []call
	data  string
}

func (f *fakeCaller) Call(_ context.Context, method, path string, body any, query url.Values, out any) error {
	f.calls = append(f.calls, call{Method: method, Path: path, Body: body, Query: query})
	if out != nil && f.data != "" {
		return json.Unmarshal([]byte(f.data), out)
	}
	return nil
}

func (f *fakeCaller) last() call { return f.calls[len(f.calls)-1] }

func TestCartAPI_CheckedViajaComoEntero(t *testing.T) {
	fc := &fakeCaller{}
	cart := api.NewCartAPI(fc)
	ctx := context.Background()

	require.NoError(t, cart.SetChecked(ctx, 7, true))
	assert.Equal(t, http.MethodPut, fc.last().Method)
	assert.Equal(t, "/cart/7/checked", fc.last().Path)
	assert.Equal(t, "1", fc.last().Query.Get("checked"))

	require.NoError(t, cart.SetAllChecked(ctx, false))
	assert.Equal(t, "/cart/checked", fc.last().Path)
	assert.Equal(t, "0", fc.last().Query.Get("checked"))

	require.NoError(t, cart.UpdateQuantity(ctx, 5, 3))
	assert.Equal(t, "/cart/5/quantity", fc.last().Path)
	assert.Equal(t, "3", fc.last().Query.Get("quantity"))
	assert.Nil(t, fc.last().Body)
}

func TestCartAPI_ListConvierteFlags(t *testing.T) {
	fc := &fakeCaller{data: `[
		{"id":1,"productId":10,"productName":"Mug","productPrice":"12.50","quantity":2,"checked":1},
		{"id":2,"productId":11,"productName":"Cup","productPrice":3,"quantity":1,"checked":0}
	]`}
	items, err := api.NewCartAPI(fc).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].Checked)
	assert.False(t, items[1].Checked)
	assert.True(t, items[0].ProductPrice.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, http.MethodGet, fc.last().Method)
}

func TestCartItemFromEntity_Subtotal(t *testing.T) {
	dto := api.CartItemFromEntity(entity.CartItem{ID: 1, ProductPrice: decimal.NewFromInt(4), Quantity: 3, Checked: true})
	b, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"checked":1`)
	assert.True(t, dto.Subtotal.Equal(decimal.NewFromInt(12)))
}

func TestAddressAPI_IsDefaultYNombresDelWire(t *testing.T) {
	fc := &fakeCaller{data: `{"id":3,"receiverName":"Ana","phone":"555","detailAddress":"Calle 1","isDefault":1}`}
	a, err := api.NewAddressAPI(fc).Add(context.Background(), entity.Address{ReceiverName: "Ana", Detail: "Calle 1", IsDefault: true})
	require.NoError(t, err)
	assert.True(t, a.IsDefault)
	assert.Equal(t, "Calle 1", a.Detail)

	b, err := json.Marshal(fc.last().Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"isDefault":1`)
	assert.Contains(t, string(b), `"detailAddress":"Calle 1"`)
}

func TestDefaultAddress(t *testing.T) {
	_, ok := api.DefaultAddress(nil)
	assert.False(t, ok)

	list := []entity.Address{{ID: 1}, {ID: 2, IsDefault: true}}
	a, ok := api.DefaultAddress(list)
	require.True(t, ok)
	assert.EqualValues(t, 2, a.ID)

	a, _ = api.DefaultAddress(list[:1])
	assert.EqualValues(t, 1, a.ID)
}

func TestPathsYQuery(t *testing.T) {
	fc := &fakeCaller{}
	ctx := context.Background()

	_, _ = api.NewProductAPI(fc).Search(ctx, "red apple", api.PageQuery{Page: 2, Size: 5})
	assert.Equal(t, "/products/search", fc.last().Path)
	assert.Equal(t, "red apple", fc.last().Query.Get("keyword"))
	assert.Equal(t, "2", fc.last().Query.Get("page"))

	_, _ = api.NewOrderAPI(fc).Get(ctx, "A/B")
	assert.Equal(t, "/orders/A%2FB", fc.last().Path, "los segmentos de texto se escapan")

	require.NoError(t, api.NewAdminAPI(fc).SetUserRole(ctx, 9, entity.RoleAdmin))
	assert.Equal(t, "/admin/users/9/role", fc.last().Path)
	assert.Equal(t, "ADMIN", fc.last().Query.Get("role"))

	require.NoError(t, api.NewAuthAPI(fc).Logout(ctx))
	assert.Equal(t, api.PathLogout, fc.last().Path)

	assert.Empty(t, api.PageQuery{}.Values())
}
