package mockapi

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mall-client/internal/application/auth"
	"github.com/jhoicas/mall-client/internal/application/usecase"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/infrastructure/memory"
)

// Config del backend simulado.
type Config struct {
	AppName    string
	Prefix     string
	JWTSecret  string
	JWTExpMins int
	JWTIssuer  string
	Logger     zerolog.Logger
}

// Server app Fiber más sus almacenes en memoria.
type Server struct {
	App        *fiber.App
	AuthUC     *auth.AuthUseCase
	Users      *memory.UserRepo
	Products   *memory.ProductRepo
	Categories *memory.CategoryRepo
	Cart       *memory.CartRepo
}

// New arma el backend con la base vacía. Usar Seed para datos de ejemplo.
func New(cfg Config) *Server {
	db := memory.NewDB()
	s := &Server{
		Users:      memory.NewUserRepository(db),
		Products:   memory.NewProductRepository(db),
		Categories: memory.NewCategoryRepository(db),
		Cart:       memory.NewCartRepository(db),
	}
	s.AuthUC = auth.NewAuthUseCase(s.Users, auth.JWTConfig{
		Secret:     cfg.JWTSecret,
		ExpMinutes: cfg.JWTExpMins,
		Issuer:     cfg.JWTIssuer,
	})

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return fail(c, e.Code, e.Code, e.Message)
			}
			return fail(c, fiber.StatusInternalServerError, CodeInternal, "Internal server error")
		},
	})
	app.Use(recover.New())
	app.Use(requestLogger(cfg.Logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})

	Router(app, RouterDeps{
		AuthUC:    s.AuthUC,
		CatalogUC: usecase.NewCatalogUseCase(s.Products, s.Categories),
		Cart:      s.Cart,
		Prefix:    cfg.Prefix,
	})
	s.App = app
	return s
}

// Demo cuentas creadas por Seed.
var (
	DemoUser  = entity.Credentials{Username: "alice", Password: "secret"}
	DemoAdmin = entity.Credentials{Username: "admin", Password: "admin123"}
)

// Seed carga categorías, productos y las cuentas demo (USER y ADMIN).
func (s *Server) Seed() error {
	fruit := s.Categories.Put(entity.Category{Name: "Fruit", SortOrder: 1})
	home := s.Categories.Put(entity.Category{Name: "Home", SortOrder: 2})

	s.Products.Put(entity.Product{CategoryID: fruit.ID, Name: "Red Apple", Price: decimal.RequireFromString("3.50"), Stock: 100, Status: entity.ProductOnSale})
	s.Products.Put(entity.Product{CategoryID: fruit.ID, Name: "Banana", Price: decimal.RequireFromString("1.20"), Stock: 50, Status: entity.ProductOnSale})
	s.Products.Put(entity.Product{CategoryID: home.ID, Name: "Coffee Mug", Price: decimal.RequireFromString("12.00"), Stock: 10, Status: entity.ProductOnSale})
	s.Products.Put(entity.Product{CategoryID: home.ID, Name: "Old Lamp", Price: decimal.RequireFromString("30.00"), Stock: 0, Status: entity.ProductOffSale})

	if _, err := s.AuthUC.CreateAccount(entity.RegisterInfo{Username: DemoUser.Username, Password: DemoUser.Password, Email: "alice@mall.test"}, entity.RoleUser); err != nil {
		return err
	}
	if _, err := s.AuthUC.CreateAccount(entity.RegisterInfo{Username: DemoAdmin.Username, Password: DemoAdmin.Password, Email: "admin@mall.test"}, entity.RoleAdmin); err != nil {
		return err
	}
	return nil
}

// Transport RoundTripper que entrega cada petición a la app sin abrir sockets.
func Transport(app *fiber.App) http.RoundTripper {
	return appTransport{app: app}
}

type appTransport struct {
	app *fiber.App
}

func (t appTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.app.Test(req, -1)
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Str("request_id", c.Get("X-Request-Id")).
			Dur("elapsed", time.Since(start)).
			Msg("petición")
		return err
	}
}
