package mockapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mall-client/internal/application/auth"
	"github.com/jhoicas/mall-client/internal/domain"
	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// AuthHandler maneja registro, login, logout y el perfil propio.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type loginResponse struct {
	Token     string             `json:"token"`
	TokenType string             `json:"tokenType"`
	User      entity.UserProfile `json:"user"`
}

// Register POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in entity.RegisterInfo
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Bad request")
	}
	user, err := h.uc.RegisterUser(in)
	if err != nil {
		return businessError(c, err, CodeNotFound)
	}
	return ok(c, user)
}

// Login POST /auth/login. Credenciales inválidas responden HTTP 401.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in entity.Credentials
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Bad request")
	}
	if in.Username == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "username and password are required")
	}
	res, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
			return fail(c, fiber.StatusUnauthorized, CodeInvalidCredentials, MsgBadCredentials)
		case errors.Is(err, domain.ErrForbidden):
			return fail(c, fiber.StatusOK, CodeAccountDisabled, "Account is disabled")
		}
		return businessError(c, err, CodeNotFound)
	}
	return ok(c, loginResponse{Token: res.Token, TokenType: "Bearer", User: res.User})
}

// Logout POST /auth/logout. Revoca el token usado.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(GetToken(c))
	return ok(c, nil)
}

// Info GET /user/info.
func (h *AuthHandler) Info(c *fiber.Ctx) error {
	p, err := h.uc.Profile(GetUserID(c))
	if err != nil {
		return businessError(c, err, CodeUserNotFound)
	}
	return ok(c, p)
}

// UpdateInfo PUT /user/info.
func (h *AuthHandler) UpdateInfo(c *fiber.Ctx) error {
	var in entity.ProfileUpdate
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Bad request")
	}
	p, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		return businessError(c, err, CodeUserNotFound)
	}
	return ok(c, p)
}

type passwordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ChangePassword PUT /user/password.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in passwordRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Bad request")
	}
	if err := h.uc.ChangePassword(GetUserID(c), in.OldPassword, in.NewPassword); err != nil {
		return businessError(c, err, CodeUserNotFound)
	}
	return ok(c, nil)
}

// Users GET /admin/users?page&size.
func (h *AuthHandler) Users(c *fiber.Ctx) error {
	page, err := h.uc.ListUsers(c.QueryInt("page", 1), c.QueryInt("size", 10))
	if err != nil {
		return businessError(c, err, CodeNotFound)
	}
	return ok(c, page)
}

// SetUserStatus PUT /admin/users/:id/status?status=0|1.
func (h *AuthHandler) SetUserStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid parameter")
	}
	if err := h.uc.SetStatus(int64(id), c.QueryInt("status", -1)); err != nil {
		return businessError(c, err, CodeUserNotFound)
	}
	return ok(c, nil)
}

// SetUserRole PUT /admin/users/:id/role?role=USER|ADMIN.
func (h *AuthHandler) SetUserRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid parameter")
	}
	if err := h.uc.SetRole(int64(id), entity.Role(c.Query("role"))); err != nil {
		return businessError(c, err, CodeUserNotFound)
	}
	return ok(c, nil)
}
