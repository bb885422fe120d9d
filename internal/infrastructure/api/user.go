package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// PathUserInfo ruta del perfil propio.
const PathUserInfo = "/user/info"

type passwordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UserAPI colaborador de /user.
type UserAPI struct {
	c Caller
}

// NewUserAPI construye el colaborador.
func NewUserAPI(c Caller) *UserAPI {
	return &UserAPI{c: c}
}

// Info GET /user/info.
func (a *UserAPI) Info(ctx context.Context) (*entity.UserProfile, error) {
	var out entity.UserProfile
	if err := a.c.Call(ctx, http.MethodGet, PathUserInfo, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /user/info; devuelve el perfil actualizado.
func (a *UserAPI) Update(ctx context.Context, in entity.ProfileUpdate) (*entity.UserProfile, error) {
	var out entity.UserProfile
	if err := a.c.Call(ctx, http.MethodPut, PathUserInfo, in, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword PUT /user/password.
func (a *UserAPI) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return a.c.Call(ctx, http.MethodPut, "/user/password", passwordChange{OldPassword: oldPassword, NewPassword: newPassword}, nil, nil)
}
