package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"medtap-client/internal/platform/httpclient"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"

	maxFormBytes = 1 << 20
)

// ErrorView es la vista de error inline de cualquier página.
type ErrorView struct {
	Page  string `json:"page,omitempty"`
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Redirect es la navegación: 303 para que el navegador siga con GET.
func Redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// Inline responde un error de formulario sin llamar al servicio.
func Inline(w http.ResponseWriter, page string, status int, msg string) {
	WriteJSON(w, status, ErrorView{Page: page, Error: msg})
}

// DecodeJSON lee el cuerpo del form. Cuerpo vacío deja v intacto.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxFormBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// Fail es el único lugar que traduce errores del API a navegación o vista:
// no autorizado => 303 /login; el resto => error inline con el mensaje remoto o fallback.
func Fail(w http.ResponseWriter, r *http.Request, page string, err error, fallback string) {
	if errors.Is(err, httpclient.ErrUnauthorized) {
		Redirect(w, r, LoginPath)
		return
	}
	Inline(w, page, StatusFor(err), Message(err, fallback))
}

// Message devuelve el mensaje del servicio remoto o fallback.
func Message(err error, fallback string) string {
	if msg := strings.TrimSpace(httpclient.RemoteMessage(err)); msg != "" {
		return msg
	}
	return fallback
}

// StatusFor elige el status HTTP de la vista de error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, httpclient.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, httpclient.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, httpclient.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
