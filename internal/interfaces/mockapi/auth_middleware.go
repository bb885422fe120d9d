package mockapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mall-client/internal/application/auth"
	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalToken  = "token"
)

// AuthMiddleware valida el Bearer Token JWT (firma, expiración y revocación)
// y carga UserID, Role y el token en c.Locals. Cualquier fallo es 401.
func AuthMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, CodeInvalidToken, "Invalid token")
		}
		token := strings.TrimSpace(parts[1])
		if token == "" {
			return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
		}
		claims, err := uc.Authenticate(token)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, CodeInvalidToken, "Invalid token")
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalToken, token)
		return c.Next()
	}
}

// RequireRole deja pasar solo los roles indicados; el resto recibe 403.
// Debe ir después de AuthMiddleware.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fail(c, fiber.StatusForbidden, CodeForbidden, "Forbidden")
	}
}

// GetUserID devuelve el UserID del contexto (0 si no hay).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) entity.Role {
	role, _ := c.Locals(LocalRole).(string)
	return entity.Role(role)
}

// GetToken devuelve el token en crudo del contexto.
func GetToken(c *fiber.Ctx) string {
	tok, _ := c.Locals(LocalToken).(string)
	return tok
}
