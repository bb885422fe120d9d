package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mall-client/internal/application/guard"
	"github.com/jhoicas/mall-client/internal/application/session"
	"github.com/jhoicas/mall-client/internal/domain"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/infrastructure/gateway"
	"github.com/jhoicas/mall-client/internal/infrastructure/storage"
	"github.com/jhoicas/mall-client/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeAuth struct {
	loginRes    *entity.LoginResult
	loginErr    error
	registerErr error
	logoutErr   error
	logoutCalls int
}

func (f *fakeAuth) Login(context.Context, entity.Credentials) (*entity.LoginResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeAuth) Register(context.Context, entity.RegisterInfo) error { return f.registerErr }

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

type fakeProfile struct {
	info    *entity.UserProfile
	updated *entity.UserProfile
	err     error
}

func (f *fakeProfile) Info(context.Context) (*entity.UserProfile, error) { return f.info, f.err }

func (f *fakeProfile) Update(_ context.Context, in entity.ProfileUpdate) (*entity.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := *f.updated
	u.Email = in.Email
	return &u, nil
}

type recorder struct {
	pushes   []string
	notices  []entity.Notice
	alerts   []string
	alertErr error
}

func (r *recorder) Push(path string) { r.pushes = append(r.pushes, path) }
func (r *recorder) Notify(n entity.Notice) { r.notices = append(r.notices, n) }
func (r *recorder) Alert(_ context.Context, title, _ string) error {
	r.alerts = append(r.alerts, title)
	return r.alertErr
}

type harness struct {
	m     *session.Manager
	store *storage.MemoryStore
	auth  *fakeAuth
	prof  *fakeProfile
	rec   *recorder
}

func newHarness(t *testing.T, store *storage.MemoryStore) *harness {
	t.Helper()
	if store == nil {
		store = storage.NewMemoryStore()
	}
	h := &harness{store: store, auth: &fakeAuth{}, prof: &fakeProfile{}, rec: &recorder{}}
	m, err := session.NewManager(session.Deps{
		Store:     store,
		Auth:      h.auth,
		Profile:   h.prof,
		Navigator: h.rec,
		Notifier:  h.rec,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)
	h.m = m
	return h
}

func assertInvariant(t *testing.T, m *session.Manager) {
	t.Helper()
	s := m.Snapshot()
	assert.Equal(t, s.IsLoggedIn(), s.Token != "", "isLoggedIn debe coincidir con token != \"\"")
	if s.IsLoggedIn() {
		assert.NotNil(t, s.User)
	}
}

func loginAs(role entity.Role) *entity.LoginResult {
	return &entity.LoginResult{Token: "T1", User: entity.UserProfile{ID: 1, Username: "alice", Role: role}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado inicial
// ──────────────────────────────────────────────────────────────────────────────

func TestNewManager_SinDatosQuedaLoggedOut(t *testing.T) {
	h := newHarness(t, nil)
	assert.False(t, h.m.IsLoggedIn())
	assert.Empty(t, h.m.Username())
	assertInvariant(t, h.m)
}

func TestNewManager_RestauraSesionCompleta(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.SetToken("T9"))
	require.NoError(t, store.SetUser(entity.UserProfile{ID: 9, Username: "bob", Role: entity.RoleAdmin}))

	h := newHarness(t, store)
	assert.True(t, h.m.IsLoggedIn())
	assert.True(t, h.m.IsAdmin())
	assert.Equal(t, "bob", h.m.Username())
	assert.Equal(t, "T9", h.m.Token())
	assertInvariant(t, h.m)
}

func TestNewManager_SesionIncompletaSeDescarta(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.SetToken("T9"))

	h := newHarness(t, store)
	assert.False(t, h.m.IsLoggedIn())
	_, ok := store.Raw(storage.TokenKey)
	assert.False(t, ok)
	assertInvariant(t, h.m)
}

func TestNewManager_Requeridos(t *testing.T) {
	_, err := session.NewManager(session.Deps{})
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_UsuarioNavegaAHome(t *testing.T) {
	h := newHarness(t, nil)
	h.auth.loginRes = loginAs(entity.RoleUser)

	require.NoError(t, h.m.Login(context.Background(), entity.Credentials{Username: "alice", Password: "secret"}))

	assert.True(t, h.m.IsLoggedIn())
	assert.Equal(t, entity.RoleUser, h.m.Role())
	assert.Equal(t, []string{guard.RouteHome}, h.rec.pushes)
	require.Len(t, h.rec.notices, 1)
	assert.Equal(t, entity.NoticeSuccess, h.rec.notices[0].Level)

	tok, _ := h.store.Token()
	assert.Equal(t, "T1", tok)
	u, err := h.store.User()
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assertInvariant(t, h.m)
}

func TestLogin_AdminNavegaAAdmin(t *testing.T) {
	h := newHarness(t, nil)
	h.auth.loginRes = loginAs(entity.RoleAdmin)

	require.NoError(t, h.m.Login(context.Background(), entity.Credentials{Username: "alice", Password: "secret"}))
	assert.Equal(t, []string{guard.RouteAdmin}, h.rec.pushes)
	assert.True(t, h.m.IsAdmin())
}

func TestLogin_FalloNoCambiaEstado(t *testing.T) {
	h := newHarness(t, nil)
	boom := errors.New("boom")
	h.auth.loginErr = boom

	err := h.m.Login(context.Background(), entity.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, boom)
	assert.False(t, h.m.IsLoggedIn())
	assert.Empty(t, h.rec.pushes)
	assert.Empty(t, h.rec.notices)
	assertInvariant(t, h.m)
}

func TestLogin_RespuestaSinToken(t *testing.T) {
	h := newHarness(t, nil)
	h.auth.loginRes = &entity.LoginResult{User: entity.UserProfile{Username: "alice"}}

	err := h.m.Login(context.Background(), entity.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrMalformedLogin)
	assert.False(t, h.m.IsLoggedIn())
}

// failingUserStore falla al guardar el perfil del usuario indicado.
type failingUserStore struct {
	*storage.MemoryStore
	failFor string
}

func (s failingUserStore) SetUser(u entity.UserProfile) error {
	if u.Username == s.failFor {
		return errors.New("disco lleno")
	}
	return s.MemoryStore.SetUser(u)
}

func TestLogin_FalloAlPersistirLimpiaTodo(t *testing.T) {
	store := failingUserStore{MemoryStore: storage.NewMemoryStore(), failFor: "alice"}
	auth := &fakeAuth{loginRes: loginAs(entity.RoleUser)}
	rec := &recorder{}
	m, err := session.NewManager(session.Deps{Store: store, Auth: auth, Navigator: rec, Notifier: rec, Logger: zerolog.Nop()})
	require.NoError(t, err)

	err = m.Login(context.Background(), entity.Credentials{Username: "alice", Password: "secret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disco lleno")
	assert.False(t, m.IsLoggedIn())
	assert.Empty(t, rec.pushes)
	_, ok := store.Raw(storage.TokenKey)
	assert.False(t, ok, "el token guardado a medias debe borrarse")
	assertInvariant(t, m)
}

func TestLogin_FalloAlPersistirConservaSesionPrevia(t *testing.T) {
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.SetToken("T0"))
	require.NoError(t, mem.SetUser(entity.UserProfile{ID: 9, Username: "bob", Role: entity.RoleAdmin}))
	store := failingUserStore{MemoryStore: mem, failFor: "alice"}
	auth := &fakeAuth{loginRes: loginAs(entity.RoleUser)}
	rec := &recorder{}
	m, err := session.NewManager(session.Deps{Store: store, Auth: auth, Navigator: rec, Notifier: rec, Logger: zerolog.Nop()})
	require.NoError(t, err)
	require.True(t, m.IsLoggedIn())

	err = m.Login(context.Background(), entity.Credentials{Username: "alice", Password: "secret"})
	require.Error(t, err)
	assert.True(t, m.IsLoggedIn(), "un login fallido no cambia el estado")
	assert.Equal(t, "bob", m.Username())
	assert.Equal(t, "T0", m.Token())
	assert.Empty(t, rec.pushes)
	assert.Empty(t, rec.notices)

	tok, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "T0", tok, "el almacenamiento vuelve a la sesión previa")
	u, err := store.User()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "bob", u.Username)
	assertInvariant(t, m)
}

func TestExpiresAt_LeeClaimExp(t *testing.T) {
	h := newHarness(t, nil)
	_, ok := h.m.ExpiresAt()
	assert.False(t, ok)

	tok, err := jwt.Generate("s", 1, "alice", "USER", "mall-mock", 60)
	require.NoError(t, err)
	h.auth.loginRes = &entity.LoginResult{Token: tok, User: entity.UserProfile{ID: 1, Username: "alice", Role: entity.RoleUser}}
	require.NoError(t, h.m.Login(context.Background(), entity.Credentials{}))

	exp, ok := h.m.ExpiresAt()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_AlertaYNavegaALogin(t *testing.T) {
	h := newHarness(t, nil)

	require.NoError(t, h.m.Register(context.Background(), entity.RegisterInfo{Username: "carol", Password: "x"}))
	assert.Equal(t, []string{session.MsgRegisteredHead}, h.rec.alerts)
	assert.Equal(t, []string{guard.RouteLogin}, h.rec.pushes)
	assert.False(t, h.m.IsLoggedIn())
}

func TestRegister_AlertaDescartadaNoNavega(t *testing.T) {
	h := newHarness(t, nil)
	h.rec.alertErr = errors.New("cancelado")

	err := h.m.Register(context.Background(), entity.RegisterInfo{Username: "carol"})
	assert.Error(t, err)
	assert.Empty(t, h.rec.pushes)
}

func TestRegister_FalloSePropaga(t *testing.T) {
	h := newHarness(t, nil)
	h.auth.registerErr = gateway.ErrBusiness

	err := h.m.Register(context.Background(), entity.RegisterInfo{Username: "carol"})
	assert.ErrorIs(t, err, gateway.ErrBusiness)
	assert.Empty(t, h.rec.alerts)
	assert.Empty(t, h.rec.pushes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_IdempotenteAunqueFalleElServidor(t *testing.T) {
	h := newHarness(t, nil)
	h.auth.loginRes = loginAs(entity.RoleUser)
	require.NoError(t, h.m.Login(context.Background(), entity.Credentials{}))
	h.auth.logoutErr = gateway.ErrNetwork

	for i := 0; i < 2; i++ {
		h.m.Logout(context.Background())
		assert.False(t, h.m.IsLoggedIn())
		assertInvariant(t, h.m)
	}

	assert.Equal(t, 2, h.auth.logoutCalls)
	tok, _ := h.store.Token()
	assert.Empty(t, tok)
	assert.Equal(t, guard.RouteLogin, h.rec.pushes[len(h.rec.pushes)-1])
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateUser / perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateUser_SinUsuario(t *testing.T) {
	h := newHarness(t, nil)
	assert.ErrorIs(t, h.m.UpdateUser(entity.UserProfile{Username: "x"}), domain.ErrNoUser)
}

func TestUpdateUser_IdaYVueltaConRecarga(t *testing.T) {
	h := newHarness(t, nil)
	h.auth.loginRes = loginAs(entity.RoleUser)
	require.NoError(t, h.m.Login(context.Background(), entity.Credentials{}))

	u := entity.UserProfile{ID: 1, Username: "alice", Email: "a@mall.test", Phone: "555", Role: entity.RoleUser, Status: 1}
	require.NoError(t, h.m.UpdateUser(u))
	assert.Equal(t, u, *h.m.User())

	reloaded := newHarness(t, h.store)
	require.NotNil(t, reloaded.m.User())
	assert.Equal(t, u, *reloaded.m.User())
	assertInvariant(t, reloaded.m)
}

func TestRefreshProfile_ReemplazaUsuario(t *testing.T) {
	h := newHarness(t, nil)
	h.auth.loginRes = loginAs(entity.RoleUser)
	require.NoError(t, h.m.Login(context.Background(), entity.Credentials{}))
	h.prof.info = &entity.UserProfile{ID: 1, Username: "alice", Avatar: "a.png", Role: entity.RoleUser}

	u, err := h.m.RefreshProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a.png", u.Avatar)
	assert.Equal(t, "a.png", h.m.User().Avatar)
}

func TestSaveProfile(t *testing.T) {
	h := newHarness(t, nil)
	_, err := h.m.SaveProfile(context.Background(), entity.ProfileUpdate{Email: "x@y"})
	assert.ErrorIs(t, err, domain.ErrNoUser)

	h.auth.loginRes = loginAs(entity.RoleUser)
	require.NoError(t, h.m.Login(context.Background(), entity.Credentials{}))
	h.prof.updated = &entity.UserProfile{ID: 1, Username: "alice", Role: entity.RoleUser}

	u, err := h.m.SaveProfile(context.Background(), entity.ProfileUpdate{Email: "x@y"})
	require.NoError(t, err)
	assert.Equal(t, "x@y", u.Email)
	stored, err := h.store.User()
	require.NoError(t, err)
	assert.Equal(t, "x@y", stored.Email)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invalidación
// ──────────────────────────────────────────────────────────────────────────────

func TestHandleInvalidated_ForzaLoggedOut(t *testing.T) {
	h := newHarness(t, nil)
	h.auth.loginRes = loginAs(entity.RoleUser)
	require.NoError(t, h.m.Login(context.Background(), entity.Credentials{}))

	require.NoError(t, h.m.HandleInvalidated(context.Background(), gateway.SessionInvalidated{Path: "/user/info"}))
	assert.False(t, h.m.IsLoggedIn())
	assert.Nil(t, h.m.User())
	assertInvariant(t, h.m)
}
