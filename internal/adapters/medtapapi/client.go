package medtapapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"medtap-client/internal/domain/users"
	"medtap-client/internal/platform/httpclient"
	"medtap-client/internal/platform/logger"
)

var ErrNotConfigured = errors.New("medtap api client not configured")

// Session es lo que el cliente necesita del store de sesión.
type Session interface {
	Token() string
	SetAuth(token string, user users.SessionUser)
	ClearAuth()
	ExpireToken(token string) bool
}

// Config del cliente del servicio MedTap.
type Config struct {
	BaseURL string // p.ej. http://localhost:8080/api/v1
	Timeout time.Duration

	// Transport base opcional (tests). Se envuelve con bearer + request id.
	Transport http.RoundTripper

	// OnSessionExpired corre una sola vez por sesión cuando un 401 la invalida.
	OnSessionExpired func()
}

type Client struct {
	http      *httpclient.Client
	session   Session
	log       logger.Logger
	onExpired func()
}

func NewClient(cfg Config, sess Session, log logger.Logger) (*Client, error) {
	if sess == nil {
		return nil, fmt.Errorf("%w: session is required", ErrNotConfigured)
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("%w: base url is required", ErrNotConfigured)
	}
	if log == nil {
		log = logger.Discard()
	}

	tr := &httpclient.RequestIDTransport{
		Base: &httpclient.BearerTransport{Base: cfg.Transport, Token: sess.Token},
	}
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout, tr)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:      hc,
		session:   sess,
		log:       log.With(map[string]any{"component": "medtapapi"}),
		onExpired: cfg.OnSessionExpired,
	}, nil
}

// BaseURL expone la URL configurada (diagnóstico).
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// do ejecuta una llamada autenticada con el token vigente al momento de salir.
// Un 401 invalida exactamente ese token.
func (c *Client) do(ctx context.Context, req httpclient.Request, out any) error {
	tok := c.session.Token()
	return c.exec(httpclient.WithBearer(ctx, tok), tok, req, out)
}

// doAnonymous nunca manda credencial (login/register).
func (c *Client) doAnonymous(ctx context.Context, req httpclient.Request, out any) error {
	return c.exec(httpclient.Anonymous(ctx), "", req, out)
}

func (c *Client) exec(ctx context.Context, tok string, req httpclient.Request, out any) error {
	start := time.Now()
	err := c.http.Do(ctx, req, out)

	fields := map[string]any{
		"method":      req.Method,
		"path":        req.Path,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		fields["status"] = he.StatusCode
	}
	if err != nil {
		fields["error"] = err
	}
	c.log.Debug("medtap api call", fields)

	if err != nil && tok != "" && errors.Is(err, httpclient.ErrUnauthorized) {
		if c.session.ExpireToken(tok) {
			c.log.Warn("session expired by remote service", map[string]any{"path": req.Path})
			if c.onExpired != nil {
				c.onExpired()
			}
		}
	}
	return err
}

type validator interface {
	Validate() error
}

func checkOne(v validator) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %w", httpclient.ErrDecode, err)
	}
	return nil
}

func checkAll[T validator](items []T) error {
	for i := range items {
		if err := checkOne(items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func itemPath(collection, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, "/?#") {
		return "", fmt.Errorf("%w: invalid id %q", httpclient.ErrValidation, id)
	}
	return collection + "/" + url.PathEscape(id), nil
}
