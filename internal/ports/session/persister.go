package session

import (
	"context"

	"medtap-client/internal/domain/users"
)

// State es lo que se persiste de la sesión: token y usuario cacheado.
type State struct {
	Token string             `json:"token"`
	User  *users.SessionUser `json:"user"`
}

// Persister guarda y recupera el estado de sesión bajo un namespace fijo.
// Load sobre un almacenamiento vacío devuelve State{} sin error.
type Persister interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, st State) error
}
