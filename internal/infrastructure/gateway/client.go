package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mall-client/internal/domain/repository"
	"github.com/jhoicas/mall-client/pkg/eventbus"
)

const (
	// DefaultTimeout timeout por llamada si no se configura otro.
	DefaultTimeout = 10 * time.Second
	// DefaultLoginPath ruta cuyo 401 significa credencial rechazada.
	DefaultLoginPath = "/auth/login"

	headerRequestID = "X-Request-Id"
)

// Client es el único punto de salida de red del cliente. Inyecta el token
// guardado, desenvuelve el envelope, clasifica los fallos y es el único que
// dispara la invalidación de sesión. No reintenta, no encola ni agrupa llamadas.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	store      repository.SessionStore
	events     *eventbus.Bus[SessionInvalidated]
	loginPath  string
	log        zerolog.Logger
	newID      func() string
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests: transporte hacia el backend simulado).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout timeout total de cada llamada. No modifica el *http.Client recibido.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			return
		}
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithLoginPath cambia la ruta de login usada para distinguir los 401.
func WithLoginPath(p string) Option {
	return func(c *Client) {
		if p != "" {
			c.loginPath = p
		}
	}
}

// WithLogger inyecta el logger del componente.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New construye el gateway. events puede ser nil (nadie escucha la invalidación).
func New(baseURL string, store repository.SessionStore, events *eventbus.Bus[SessionInvalidated], opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("gateway: base URL inválida %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("gateway: base URL sin esquema o host: %q", baseURL)
	}
	if store == nil {
		return nil, fmt.Errorf("gateway: store requerido")
	}
	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		store:      store,
		events:     events,
		loginPath:  DefaultLoginPath,
		log:        zerolog.Nop(),
		newID:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get GET path?query y decodifica data en out (out puede ser nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Call(ctx, http.MethodGet, path, nil, query, out)
}

// Post POST con cuerpo JSON.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Call(ctx, http.MethodPost, path, body, nil, out)
}

// Put PUT con cuerpo JSON y/o query.
func (c *Client) Put(ctx context.Context, path string, body any, query url.Values, out any) error {
	return c.Call(ctx, http.MethodPut, path, body, query, out)
}

// Delete DELETE path.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Call(ctx, http.MethodDelete, path, nil, nil, out)
}

// Call ejecuta una llamada. Con éxito de negocio decodifica el campo data del
// envelope en out; en cualquier otro caso devuelve un *Error clasificado.
func (c *Client) Call(ctx context.Context, method, path string, body any, query url.Values, out any) error {
	start := time.Now()
	reqID := c.newID()
	log := c.log.With().Str("method", method).Str("path", path).Str("request_id", reqID).Logger()

	req, err := c.buildRequest(ctx, method, path, body, query, reqID)
	if err != nil {
		return c.fail(log, &Error{Kind: KindConfig, Message: fallbackMessages[KindConfig], Err: err}, method, path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(log, &Error{Kind: KindNetwork, Message: fallbackMessages[KindNetwork], Err: err}, method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(log, &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: fallbackMessages[KindNetwork], Err: err}, method, path)
	}

	log.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("llamada completada")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(log, c.classifyStatus(ctx, method, path, reqID, resp.StatusCode, raw), method, path)
	}

	env, ok := decodeEnvelope(raw)
	if !ok || !env.OK() {
		e := newError(KindBusiness, env.Message)
		e.Status = resp.StatusCode
		e.Code = env.Code
		return c.fail(log, e, method, path)
	}

	if out != nil && env.hasData() {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return c.fail(log, &Error{Kind: KindConfig, Status: resp.StatusCode, Message: fallbackMessages[KindConfig], Err: fmt.Errorf("decodificar data: %w", err)}, method, path)
		}
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, method, path string, body any, query url.Values, reqID string) (*http.Request, error) {
	if method == "" {
		return nil, errors.New("método vacío")
	}
	if ctx == nil {
		return nil, errors.New("context nil")
	}
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerRequestID, reqID)

	token, err := c.store.Token()
	if err != nil {
		c.log.Warn().Err(err).Msg("no se pudo leer el token; la llamada sale sin credencial")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// classifyStatus traduce un estado HTTP no 2xx. Solo el 401 fuera de la ruta
// de login tiene efecto secundario.
func (c *Client) classifyStatus(ctx context.Context, method, path, reqID string, status int, raw []byte) *Error {
	env, _ := decodeEnvelope(raw)

	var e *Error
	switch status {
	case http.StatusUnauthorized:
		if c.isLoginPath(path) {
			e = newError(KindCredentialRejected, env.Message)
		} else {
			c.invalidate(ctx, method, path, reqID)
			e = newError(KindSessionInvalidated, "")
		}
	case http.StatusForbidden:
		e = newError(KindForbidden, env.Message)
	case http.StatusNotFound:
		e = newError(KindNotFound, "")
	case http.StatusInternalServerError:
		e = newError(KindServerFault, "")
	default:
		e = newError(KindHTTP, env.Message)
	}
	e.Status = status
	return e
}

func (c *Client) isLoginPath(path string) bool {
	return strings.Contains(path, c.loginPath)
}

// invalidate borra el almacenamiento y publica SessionInvalidated.
// Los suscriptores corren antes de que Call devuelva el error.
func (c *Client) invalidate(ctx context.Context, method, path, reqID string) {
	if err := c.store.Clear(); err != nil {
		c.log.Error().Err(err).Msg("no se pudo limpiar el almacenamiento de sesión")
	}
	if c.events == nil {
		return
	}
	ev := SessionInvalidated{Method: method, Path: path, RequestID: reqID, At: time.Now()}
	if err := c.events.Publish(ctx, ev); err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("suscriptores de invalidación fallaron")
	}
}

func (c *Client) fail(log zerolog.Logger, e *Error, method, path string) error {
	e.Method = method
	e.Path = path
	ev := log.Warn().Str("kind", e.Kind.String()).Int("status", e.Status)
	if e.Code != 0 {
		ev = ev.Int("code", e.Code)
	}
	if e.Err != nil {
		ev = ev.AnErr("cause", e.Err)
	}
	ev.Msg(e.Message)
	return e
}
