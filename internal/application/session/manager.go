// Package session contiene el gestor de sesión: la máquina de estados
// LoggedOut / LoggedIn(token, user), su persistencia local y las operaciones
// login, register, logout y updateUser.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/mall-client/internal/application/guard"
	"github.com/jhoicas/mall-client/internal/domain"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/domain/repository"
	"github.com/jhoicas/mall-client/internal/infrastructure/gateway"
	"github.com/jhoicas/mall-client/pkg/jwt"
)

// Textos de avisos y alertas.
const (
	MsgLoggedIn       = "sesión iniciada"
	MsgLoggedOut      = "sesión cerrada"
	MsgRegisteredHead = "registro exitoso"
	MsgRegisteredBody = "su cuenta fue creada, inicie sesión para continuar"
)

// Deps dependencias del gestor. Navigator y Notifier son opcionales.
type Deps struct {
	Store     repository.SessionStore
	Auth      AuthService
	Profile   ProfileService
	Navigator Navigator
	Notifier  Notifier
	Logger    zerolog.Logger
}

// Manager es el único dueño del estado de sesión en memoria. Las llamadas de
// red se hacen sin tomar el mutex, así que la invalidación del gateway puede
// intercalarse con cualquier operación en curso.
type Manager struct {
	mu    sync.Mutex
	state entity.SessionState
	token string
	user  *entity.UserProfile

	store   repository.SessionStore
	auth    AuthService
	profile ProfileService
	nav     Navigator
	notify  Notifier
	log     zerolog.Logger
}

// NewManager restaura el estado desde el almacenamiento: LoggedIn solo si hay
// token y usuario; con datos corruptos o incompletos limpia y queda LoggedOut.
func NewManager(d Deps) (*Manager, error) {
	if d.Store == nil || d.Auth == nil {
		return nil, fmt.Errorf("session: store y auth son requeridos")
	}
	m := &Manager{
		state:   entity.LoggedOut,
		store:   d.Store,
		auth:    d.Auth,
		profile: d.Profile,
		nav:     d.Navigator,
		notify:  d.Notifier,
		log:     d.Logger,
	}
	m.restore()
	return m, nil
}

func (m *Manager) restore() {
	token, terr := m.store.Token()
	user, uerr := m.store.User()
	if err := errors.Join(terr, uerr); err != nil {
		m.log.Warn().Err(err).Msg("sesión persistida ilegible, se descarta")
		m.clearStore()
		return
	}
	if token == "" || user == nil {
		if token != "" || user != nil {
			m.log.Warn().Msg("sesión persistida incompleta, se descarta")
			m.clearStore()
		}
		return
	}
	m.state, m.token, m.user = entity.LoggedIn, token, user
	m.log.Debug().Str("username", user.Username).Msg("sesión restaurada")
}

// Login autentica; con éxito pasa a LoggedIn, persiste y navega a /admin o /.
// Con fallo el estado no cambia y el error se propaga tal cual.
func (m *Manager) Login(ctx context.Context, creds entity.Credentials) error {
	res, err := m.auth.Login(ctx, creds)
	if err != nil {
		return err
	}
	if res == nil || res.Token == "" || res.User.Username == "" {
		return domain.ErrMalformedLogin
	}
	user := res.User

	prev := m.Snapshot()
	if err := m.persist(res.Token, user); err != nil {
		m.rollback(prev)
		return err
	}
	m.mu.Lock()
	m.state, m.token, m.user = entity.LoggedIn, res.Token, &user
	m.mu.Unlock()

	m.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login exitoso")
	m.notice(entity.NoticeSuccess, MsgLoggedIn)
	if user.IsAdmin() {
		m.push(guard.RouteAdmin)
	} else {
		m.push(guard.RouteHome)
	}
	return nil
}

// Register crea la cuenta sin tocar la sesión; confirma con una alerta y
// navega a login. Si la alerta se descarta devuelve su error y no navega.
func (m *Manager) Register(ctx context.Context, info entity.RegisterInfo) error {
	if err := m.auth.Register(ctx, info); err != nil {
		return err
	}
	m.log.Info().Str("username", info.Username).Msg("registro exitoso")
	if m.notify != nil {
		if err := m.notify.Alert(ctx, MsgRegisteredHead, MsgRegisteredBody); err != nil {
			return err
		}
	}
	m.push(guard.RouteLogin)
	return nil
}

// Logout intenta una vez avisar al servidor e ignora el resultado; después
// limpia almacenamiento y estado sin condiciones. Nunca falla.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.auth.Logout(ctx); err != nil {
		m.log.Warn().Err(err).Msg("logout remoto falló, se ignora")
	}
	m.clearStore()
	m.reset()
	m.log.Info().Msg("logout")
	m.notice(entity.NoticeSuccess, MsgLoggedOut)
	m.push(guard.RouteLogin)
}

// UpdateUser reemplaza el perfil y lo vuelve a persistir.
func (m *Manager) UpdateUser(u entity.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return domain.ErrNoUser
	}
	if err := m.store.SetUser(u); err != nil {
		return err
	}
	m.user = &u
	return nil
}

// RefreshProfile vuelve a leer /user/info y reemplaza el perfil.
func (m *Manager) RefreshProfile(ctx context.Context) (*entity.UserProfile, error) {
	if m.profile == nil {
		return nil, fmt.Errorf("session: sin colaborador de perfil")
	}
	u, err := m.profile.Info(ctx)
	if err != nil {
		return nil, err
	}
	if err := m.UpdateUser(*u); err != nil {
		return nil, err
	}
	return u, nil
}

// SaveProfile guarda los cambios del perfil en el servidor y reemplaza el local.
func (m *Manager) SaveProfile(ctx context.Context, in entity.ProfileUpdate) (*entity.UserProfile, error) {
	if m.profile == nil {
		return nil, fmt.Errorf("session: sin colaborador de perfil")
	}
	if !m.IsLoggedIn() {
		return nil, domain.ErrNoUser
	}
	u, err := m.profile.Update(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := m.UpdateUser(*u); err != nil {
		return nil, err
	}
	return u, nil
}

// HandleInvalidated suscriptor del evento del gateway: fuerza LoggedOut.
// El gateway ya limpió el almacenamiento; la navegación la hace el router.
func (m *Manager) HandleInvalidated(_ context.Context, ev gateway.SessionInvalidated) error {
	m.reset()
	m.log.Warn().Str("path", ev.Path).Str("request_id", ev.RequestID).Msg("sesión invalidada por el servidor")
	return nil
}

// Snapshot copia del estado actual (el perfil se copia también).
func (m *Manager) Snapshot() entity.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := entity.Session{State: m.state, Token: m.token}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

func (m *Manager) IsLoggedIn() bool { return m.Snapshot().IsLoggedIn() }

func (m *Manager) IsAdmin() bool { return m.Snapshot().IsAdmin() }

func (m *Manager) Username() string { return m.Snapshot().Username() }

func (m *Manager) Role() entity.Role { return m.Snapshot().Role() }

func (m *Manager) Token() string { return m.Snapshot().Token }

// User copia del perfil actual o nil.
func (m *Manager) User() *entity.UserProfile { return m.Snapshot().User }

// ExpiresAt lee la expiración del token (sin verificar firma).
func (m *Manager) ExpiresAt() (time.Time, bool) {
	tok := m.Token()
	if tok == "" {
		return time.Time{}, false
	}
	return jwt.ExpiresAt(tok)
}

func (m *Manager) persist(token string, u entity.UserProfile) error {
	if err := m.store.SetToken(token); err != nil {
		return fmt.Errorf("session: guardar token: %w", err)
	}
	if err := m.store.SetUser(u); err != nil {
		return fmt.Errorf("session: guardar usuario: %w", err)
	}
	return nil
}

// rollback deja almacenamiento y estado como estaban antes de un login cuyo
// guardado falló. Si la sesión previa no se puede volver a guardar, se limpia todo.
func (m *Manager) rollback(prev entity.Session) {
	if prev.IsLoggedIn() && prev.User != nil {
		if err := m.persist(prev.Token, *prev.User); err == nil {
			return
		}
		m.log.Error().Str("username", prev.User.Username).Msg("no se pudo restaurar la sesión previa")
	}
	m.clearStore()
	m.reset()
}

func (m *Manager) reset() {
	m.mu.Lock()
	m.state, m.token, m.user = entity.LoggedOut, "", nil
	m.mu.Unlock()
}

func (m *Manager) clearStore() {
	if err := m.store.Clear(); err != nil {
		m.log.Error().Err(err).Msg("no se pudo limpiar el almacenamiento de sesión")
	}
}

func (m *Manager) notice(level entity.NoticeLevel, msg string) {
	if m.notify != nil {
		m.notify.Notify(entity.Notice{Level: level, Message: msg})
	}
}

func (m *Manager) push(path string) {
	if m.nav != nil {
		m.nav.Push(path)
	}
}
