package middleware

import (
	"context"
	"net/http"

	"medtap-client/internal/session"
)

type ctxKey string

const sessionKey ctxKey = "session"

// SessionContext guarda un snapshot de la sesión en el contexto del request.
// No corta nada: los handlers (o RequireSession) deciden.
func SessionContext(reader session.Reader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), sessionKey, reader.Snapshot())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (session.State, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return session.State{}, false
	}
	s, ok := v.(session.State)
	return s, ok
}

// RequireSession redirige (303) a loginPath cuando no hay token.
// Solo mira presencia: un token vencido pasa y falla después en la llamada remota.
func RequireSession(reader session.Reader, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if reader.Token() == "" {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
