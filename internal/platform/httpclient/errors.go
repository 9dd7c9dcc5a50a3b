package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrServer       = errors.New("server error")
	ErrTransport    = errors.New("transport error")
	ErrDecode       = errors.New("invalid response payload")
)

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string

	// Message es el campo "error" (o "message") del cuerpo JSON, si existe.
	Message string
}

func newHTTPError(status int, raw []byte) *HTTPError {
	e := &HTTPError{
		StatusCode: status,
		Body:       strings.TrimSpace(string(raw)),
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		e.Message = strings.TrimSpace(payload.Error)
		if e.Message == "" {
			e.Message = strings.TrimSpace(payload.Message)
		}
	}
	return e
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// Unwrap clasifica el status para errors.Is.
func (e *HTTPError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity,
		e.StatusCode == http.StatusConflict:
		return ErrValidation
	case e.StatusCode >= 500:
		return ErrServer
	default:
		return nil
	}
}

// RemoteMessage devuelve el mensaje del servicio remoto, o "" si no hay.
func RemoteMessage(err error) string {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Message
	}
	return ""
}
