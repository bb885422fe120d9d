package cli_test

import (
	"bytes"
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mall-client/internal/interfaces/cli"
	"github.com/jhoicas/mall-client/internal/interfaces/mockapi"
	"github.com/jhoicas/mall-client/pkg/config"
)

type harness struct {
	cfg *config.Config
	hc  *http.Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := mockapi.New(mockapi.Config{AppName: "mall-mock-test", Prefix: "/api", JWTSecret: "s", JWTExpMins: 60, JWTIssuer: "test", Logger: zerolog.Nop()})
	require.NoError(t, srv.Seed())
	return &harness{
		cfg: &config.Config{
			App:     config.AppConfig{Env: "test", Name: "mall", Currency: "USD", Language: "en"},
			API:     config.APIConfig{BaseURL: "http://mall.test/api", TimeoutSeconds: 5, LoginPath: "/auth/login"},
			Storage: config.StorageConfig{Path: filepath.Join(t.TempDir(), "session.json")},
		},
		hc: &http.Client{Transport: mockapi.Transport(srv.App)},
	}
}

// run simula una invocación del binario: cada llamada arma un App nuevo que
// restaura la sesión desde el archivo.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app, err := cli.NewApp(h.cfg, zerolog.Nop(), &out, h.hc)
	require.NoError(t, err)
	err = cli.Execute(context.Background(), app, args)
	return out.String(), err
}

func TestCLI_LoginPersisteEntreInvocaciones(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "login", "-u", "alice", "-p", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "-> /\n")

	out, err = h.run(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "usuario: alice")
	assert.Contains(t, out, "rol: USER")
	assert.Contains(t, out, "expira:")
}

func TestCLI_CredencialesInvalidas(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "login", "-u", "alice", "-p", "nope")
	require.Error(t, err)
	assert.Equal(t, mockapi.MsgBadCredentials, err.Error())

	out, err := h.run(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "estado: logged_out")
}

func TestCLI_CarritoCompleto(t *testing.T) {
	h := newHarness(t)
	_, err := h.run(t, "login", "-u", "alice", "-p", "secret")
	require.NoError(t, err)

	out, err := h.run(t, "products", "banana")
	require.NoError(t, err)
	assert.Contains(t, out, "Banana")

	out, err = h.run(t, "cart", "add", "4", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Banana")
	assert.Contains(t, out, "seleccionados: 2")

	out, err = h.run(t, "cart", "check-all", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "seleccionados: 0")

	out, err = h.run(t, "cart")
	require.NoError(t, err)
	assert.Contains(t, out, "todo: false")
}

func TestCLI_OpenAplicaGuard(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "open", "/admin")
	require.NoError(t, err)
	assert.Contains(t, out, "[warning]")
	assert.Contains(t, out, "-> /login")

	_, err = h.run(t, "login", "-u", "alice", "-p", "secret")
	require.NoError(t, err)
	out, err = h.run(t, "open", "/admin")
	require.NoError(t, err)
	assert.Contains(t, out, "[error]")
	assert.Contains(t, out, "-> /\n")
}

func TestCLI_LogoutLimpiaArchivo(t *testing.T) {
	h := newHarness(t)
	_, err := h.run(t, "login", "-u", "alice", "-p", "secret")
	require.NoError(t, err)

	out, err := h.run(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "-> /login")

	out, err = h.run(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "logged_out")
}
