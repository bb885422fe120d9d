// Package mockapi es un backend en memoria sobre Fiber con el mismo contrato
// que la tienda real: envelope {code, message, data}, errores de negocio con
// HTTP 200 y 401/403 como estados HTTP. Lo usan los tests de integración y cmd/mockapi.
package mockapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mall-client/internal/domain"
)

// Códigos de negocio del envelope.
const (
	CodeSuccess            = 200
	CodeBadRequest         = 400
	CodeUnauthorized       = 401
	CodeForbidden          = 403
	CodeNotFound           = 404
	CodeInternal           = 500
	CodeUsernameTaken      = 40001
	CodeUserNotFound       = 40004
	CodeInvalidCredentials = 40005
	CodeAccountDisabled    = 40006
	CodeProductNotFound    = 40101
	CodeInsufficientStock  = 40103
	CodeCartItemNotFound   = 40301
	CodeInvalidToken       = 40701
)

// MsgBadCredentials mensaje del 401 de login.
const MsgBadCredentials = "bad credentials"

// Result envelope de todas las respuestas.
type Result struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func ok(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Result{Code: CodeSuccess, Message: "success", Data: data})
}

func fail(c *fiber.Ctx, status, code int, message string) error {
	return c.Status(status).JSON(Result{Code: code, Message: message})
}

// businessError responde HTTP 200 con el código de negocio correspondiente al error.
func businessError(c *fiber.Ctx, err error, notFoundCode int) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusOK, notFoundCode, "not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusOK, CodeUserNotFound, "User not found")
	case errors.Is(err, domain.ErrUsernameTaken):
		return fail(c, fiber.StatusOK, CodeUsernameTaken, "Username already exists")
	case errors.Is(err, domain.ErrInsufficientStock):
		return fail(c, fiber.StatusOK, CodeInsufficientStock, "Insufficient stock")
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid parameter")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusOK, CodeInvalidCredentials, "Invalid username or password")
	default:
		return fail(c, fiber.StatusInternalServerError, CodeInternal, "Internal server error")
	}
}
