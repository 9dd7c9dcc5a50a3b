package httpclient

import (
	"context"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// TokenFunc devuelve el token vigente, o "" si no hay sesión.
type TokenFunc func() string

type ctxKey int

const (
	bearerKey ctxKey = iota
	anonymousKey
)

// WithBearer fija el token para los requests hechos con ctx (tiene prioridad sobre TokenFunc).
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey, token)
}

// Anonymous marca ctx para que el request salga sin credencial (login/registro).
func Anonymous(ctx context.Context) context.Context {
	return context.WithValue(ctx, anonymousKey, true)
}

func bearerFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(bearerKey).(string)
	return v, ok
}

func isAnonymous(ctx context.Context) bool {
	v, _ := ctx.Value(anonymousKey).(bool)
	return v
}

// BearerTransport agrega "Authorization: Bearer <token>" cuando hay token.
// Sin token el request sale sin credencial; el servicio remoto decide.
type BearerTransport struct {
	Base  http.RoundTripper
	Token TokenFunc
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if isAnonymous(req.Context()) {
		return t.base().RoundTrip(req)
	}

	token, ok := bearerFrom(req.Context())
	if !ok && t.Token != nil {
		token = t.Token()
	}
	token = strings.TrimSpace(token)
	if token == "" || req.Header.Get("Authorization") != "" {
		return t.base().RoundTrip(req)
	}

	// RoundTripper no debe mutar el request original.
	r2 := req.Clone(req.Context())
	(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(r2)
	return t.base().RoundTrip(r2)
}

func (t *BearerTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// RequestIDHeader es el header de correlación hacia el servicio remoto.
const RequestIDHeader = "X-Request-ID"

// RequestIDTransport propaga el request id de chi o genera uno nuevo.
type RequestIDTransport struct {
	Base http.RoundTripper
}

func (t *RequestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Header.Get(RequestIDHeader) != "" {
		return base.RoundTrip(req)
	}

	id := chimw.GetReqID(req.Context())
	if id == "" {
		id = uuid.NewString()
	}
	r2 := req.Clone(req.Context())
	r2.Header.Set(RequestIDHeader, id)
	return base.RoundTrip(r2)
}
