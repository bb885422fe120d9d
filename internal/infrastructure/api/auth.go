package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// Rutas de autenticación.
const (
	PathLogin    = "/auth/login"
	PathRegister = "/auth/register"
	PathLogout   = "/auth/logout"
)

type loginResponse struct {
	Token     string             `json:"token"`
	TokenType string             `json:"tokenType"`
	User      entity.UserProfile `json:"user"`
}

// AuthAPI colaborador de /auth.
type AuthAPI struct {
	c Caller
}

// NewAuthAPI construye el colaborador.
func NewAuthAPI(c Caller) *AuthAPI {
	return &AuthAPI{c: c}
}

// Login POST /auth/login.
func (a *AuthAPI) Login(ctx context.Context, creds entity.Credentials) (*entity.LoginResult, error) {
	var out loginResponse
	if err := a.c.Call(ctx, http.MethodPost, PathLogin, creds, nil, &out); err != nil {
		return nil, err
	}
	return &entity.LoginResult{Token: out.Token, User: out.User}, nil
}

// Register POST /auth/register.
func (a *AuthAPI) Register(ctx context.Context, info entity.RegisterInfo) error {
	return a.c.Call(ctx, http.MethodPost, PathRegister, info, nil, nil)
}

// Logout POST /auth/logout.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.Call(ctx, http.MethodPost, PathLogout, nil, nil, nil)
}
