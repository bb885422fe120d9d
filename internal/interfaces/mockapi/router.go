package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mall-client/internal/application/auth"
	"github.com/jhoicas/mall-client/internal/application/usecase"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *usecase.CatalogUseCase
	Cart      repository.CartRepository
	Prefix    string // p. ej. "/api"
}

// Router registra las rutas del backend simulado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group(deps.Prefix)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.AuthUC), authHandler.Logout)

	// Catálogo (público)
	catalog := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalog.List)
	api.Get("/products/search", catalog.Search)
	api.Get("/products/category/:id", catalog.ByCategory)
	api.Get("/products/:id", catalog.Get)
	api.Get("/categories", catalog.Categories)
	api.Get("/categories/:id", catalog.Category)

	// Rutas protegidas (requieren Bearer Token)
	requireAuth := AuthMiddleware(deps.AuthUC)

	user := api.Group("/user", requireAuth)
	user.Get("/info", authHandler.Info)
	user.Put("/info", authHandler.UpdateInfo)
	user.Put("/password", authHandler.ChangePassword)

	cartHandler := NewCartHandler(deps.Cart)
	cart := api.Group("/cart", requireAuth)
	cart.Get("/", cartHandler.List)
	cart.Post("/", cartHandler.Add)
	cart.Put("/checked", cartHandler.SetAllChecked)
	cart.Put("/:id/quantity", cartHandler.UpdateQuantity)
	cart.Put("/:id/checked", cartHandler.SetChecked)
	cart.Delete("/:id", cartHandler.Delete)

	// Administración (JWT + RBAC)
	admin := api.Group("/admin", requireAuth, RequireRole(entity.RoleAdmin))
	admin.Get("/users", authHandler.Users)
	admin.Put("/users/:id/status", authHandler.SetUserStatus)
	admin.Put("/users/:id/role", authHandler.SetUserRole)
}
