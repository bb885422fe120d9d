// Package cli expone el cliente de la tienda como comandos de terminal.
// Cada invocación restaura la sesión desde el archivo local, ejecuta una
// operación y muestra los avisos y la ruta resultante.
package cli

import (
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jhoicas/mall-client/internal/application/cart"
	"github.com/jhoicas/mall-client/internal/application/guard"
	"github.com/jhoicas/mall-client/internal/application/session"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/infrastructure/api"
	"github.com/jhoicas/mall-client/internal/infrastructure/gateway"
	"github.com/jhoicas/mall-client/internal/infrastructure/storage"
	"github.com/jhoicas/mall-client/internal/interfaces/navigation"
	"github.com/jhoicas/mall-client/pkg/config"
	"github.com/jhoicas/mall-client/pkg/eventbus"
	"github.com/jhoicas/mall-client/pkg/money"
)

// App cliente completo cableado para una invocación.
type App struct {
	Session  *session.Manager
	Cart     *cart.Synchronizer
	Router   *navigation.Router
	Inbox    *navigation.Inbox
	Products *api.ProductAPI
	Store    *storage.FileStore

	money *money.Formatter
	out   io.Writer
	log   zerolog.Logger
}

// NewApp arma el cliente. hc puede ser nil (cliente HTTP por defecto con el timeout configurado).
func NewApp(cfg *config.Config, log zerolog.Logger, out io.Writer, hc *http.Client) (*App, error) {
	fm, err := money.NewFormatter(cfg.App.Currency, cfg.App.Language)
	if err != nil {
		return nil, err
	}
	store := storage.NewFileStore(cfg.Storage.Path)
	bus := eventbus.New[gateway.SessionInvalidated]()

	opts := []gateway.Option{
		gateway.WithTimeout(cfg.API.Timeout()),
		gateway.WithLoginPath(cfg.API.LoginPath),
		gateway.WithLogger(log.With().Str("component", "gateway").Logger()),
	}
	if hc != nil {
		opts = append([]gateway.Option{gateway.WithHTTPClient(hc)}, opts...)
	}
	gw, err := gateway.New(cfg.API.BaseURL, store, bus, opts...)
	if err != nil {
		return nil, err
	}

	a := &App{Inbox: &navigation.Inbox{}, Store: store, money: fm, out: out, log: log}
	a.Router = navigation.NewRouter(guard.DefaultTable(), a.snapshot, a.Inbox, log.With().Str("component", "router").Logger())
	a.Session, err = session.NewManager(session.Deps{
		Store:     store,
		Auth:      api.NewAuthAPI(gw),
		Profile:   api.NewUserAPI(gw),
		Navigator: a.Router,
		Notifier:  a.Inbox,
		Logger:    log.With().Str("component", "session").Logger(),
	})
	if err != nil {
		return nil, err
	}
	// El gestor limpia el estado antes de que el router navegue.
	bus.Subscribe("session", a.Session.HandleInvalidated)
	bus.Subscribe("router", a.Router.HandleInvalidated)

	a.Cart, err = cart.NewSynchronizer(api.NewCartAPI(gw), a.Inbox, log.With().Str("component", "cart").Logger())
	if err != nil {
		return nil, err
	}
	a.Products = api.NewProductAPI(gw)
	return a, nil
}

func (a *App) snapshot() entity.Session {
	return a.Session.Snapshot()
}

// flush imprime avisos pendientes y la ruta actual.
func (a *App) flush() {
	for _, n := range a.Inbox.Drain() {
		fmt.Fprintf(a.out, "[%s] %s\n", n.Level, n.Message)
	}
	fmt.Fprintf(a.out, "-> %s\n", a.Router.Current())
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
