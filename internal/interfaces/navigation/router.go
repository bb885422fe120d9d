// Package navigation es la facilidad de navegación del cliente: cada intento
// pasa por el guard con la sesión del momento y sigue sus redirecciones.
package navigation

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/mall-client/internal/application/guard"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/infrastructure/gateway"
)

// MaxRedirects corta cadenas de redirección del guard.
const MaxRedirects = 5

// SessionFunc devuelve la sesión actual (normalmente Manager.Snapshot).
type SessionFunc func() entity.Session

// Notifier recibe los avisos que acompañan una redirección.
type Notifier interface {
	Notify(n entity.Notice)
}

// Router navegación con guard. Current nunca es una ruta rechazada.
type Router struct {
	mu      sync.Mutex
	table   *guard.Table
	session SessionFunc
	notify  Notifier
	log     zerolog.Logger
	current string
	history []string
}

// NewRouter crea el router en la ruta de inicio. table nil usa guard.DefaultTable().
func NewRouter(table *guard.Table, session SessionFunc, notify Notifier, log zerolog.Logger) *Router {
	if table == nil {
		table = guard.DefaultTable()
	}
	return &Router{table: table, session: session, notify: notify, log: log, current: guard.RouteHome}
}

// Push intenta navegar a path. El guard se evalúa en cada salto con la sesión
// leída en ese momento.
func (r *Router) Push(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := path
	for hops := 0; ; hops++ {
		route := r.table.Lookup(target)
		d := guard.Decide(route, r.snapshot())
		if d.Notice != nil && r.notify != nil {
			r.notify.Notify(*d.Notice)
		}
		if d.Allow {
			r.current = route.Path
			r.history = append(r.history, route.Path)
			r.log.Debug().Str("path", route.Path).Msg("navegación")
			return
		}
		r.log.Debug().Str("from", route.Path).Str("to", d.Redirect).Msg("redirección del guard")
		if hops >= MaxRedirects {
			r.log.Warn().Str("path", path).Msg("demasiadas redirecciones, se mantiene la ruta actual")
			return
		}
		target = d.Redirect
	}
}

// Resolve evalúa el guard para path sin navegar.
func (r *Router) Resolve(path string) (guard.Route, guard.Decision) {
	route := r.table.Lookup(path)
	return route, guard.Decide(route, r.snapshot())
}

// Current ruta actual.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History rutas visitadas en orden.
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

// HandleInvalidated suscriptor del evento del gateway: lleva a login.
func (r *Router) HandleInvalidated(_ context.Context, _ gateway.SessionInvalidated) error {
	r.Push(guard.RouteLogin)
	return nil
}

func (r *Router) snapshot() entity.Session {
	if r.session == nil {
		return entity.Session{State: entity.LoggedOut}
	}
	return r.session()
}
