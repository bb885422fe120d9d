package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/infrastructure/gateway"
)

// AddressDTO dirección en el wire (isDefault como 0/1).
type AddressDTO struct {
	ID           int64        `json:"id,omitempty"`
	ReceiverName string       `json:"receiverName"`
	Phone        string       `json:"phone"`
	Province     string       `json:"province"`
	City         string       `json:"city"`
	District     string       `json:"district"`
	Detail       string       `json:"detailAddress"`
	IsDefault    gateway.Flag `json:"isDefault"`
}

func (d AddressDTO) toEntity() entity.Address {
	return entity.Address{
		ID:           d.ID,
		ReceiverName: d.ReceiverName,
		Phone:        d.Phone,
		Province:     d.Province,
		City:         d.City,
		District:     d.District,
		Detail:       d.Detail,
		IsDefault:    d.IsDefault.Bool(),
	}
}

func addressFromEntity(a entity.Address) AddressDTO {
	return AddressDTO{
		ID:           a.ID,
		ReceiverName: a.ReceiverName,
		Phone:        a.Phone,
		Province:     a.Province,
		City:         a.City,
		District:     a.District,
		Detail:       a.Detail,
		IsDefault:    gateway.Flag(a.IsDefault),
	}
}

// AddressAPI colaborador de /addresses.
type AddressAPI struct {
	c Caller
}

// NewAddressAPI construye el colaborador.
func NewAddressAPI(c Caller) *AddressAPI {
	return &AddressAPI{c: c}
}

// List GET /addresses.
func (a *AddressAPI) List(ctx context.Context) ([]entity.Address, error) {
	var out []AddressDTO
	if err := a.c.Call(ctx, http.MethodGet, "/addresses", nil, nil, &out); err != nil {
		return nil, err
	}
	list := make([]entity.Address, 0, len(out))
	for _, d := range out {
		list = append(list, d.toEntity())
	}
	return list, nil
}

// Add POST /addresses.
func (a *AddressAPI) Add(ctx context.Context, in entity.Address) (*entity.Address, error) {
	return a.write(ctx, http.MethodPost, "/addresses", in)
}

// Update PUT /addresses/{id}.
func (a *AddressAPI) Update(ctx context.Context, id int64, in entity.Address) (*entity.Address, error) {
	return a.write(ctx, http.MethodPut, pathf("/addresses/%d", id), in)
}

// Delete DELETE /addresses/{id}.
func (a *AddressAPI) Delete(ctx context.Context, id int64) error {
	return a.c.Call(ctx, http.MethodDelete, pathf("/addresses/%d", id), nil, nil, nil)
}

// SetDefault PUT /addresses/{id}/default.
func (a *AddressAPI) SetDefault(ctx context.Context, id int64) error {
	return a.c.Call(ctx, http.MethodPut, pathf("/addresses/%d/default", id), nil, nil, nil)
}

func (a *AddressAPI) write(ctx context.Context, method, path string, in entity.Address) (*entity.Address, error) {
	var out AddressDTO
	if err := a.c.Call(ctx, method, path, addressFromEntity(in), nil, &out); err != nil {
		return nil, err
	}
	e := out.toEntity()
	return &e, nil
}

// DefaultAddress la marcada como predeterminada o, en su defecto, la primera.
func DefaultAddress(list []entity.Address) (entity.Address, bool) {
	for _, a := range list {
		if a.IsDefault {
			return a, true
		}
	}
	if len(list) > 0 {
		return list[0], true
	}
	return entity.Address{}, false
}
