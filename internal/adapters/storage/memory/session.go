package memory

import (
	"context"
	"sync"

	portsession "medtap-client/internal/ports/session"
)

// SessionStore guarda la sesión en memoria del proceso (tests y SESSION_BACKEND=memory).
type SessionStore struct {
	mu    sync.RWMutex
	state portsession.State
	saves int
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (r *SessionStore) Load(ctx context.Context) (portsession.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyState(r.state), nil
}

func (r *SessionStore) Save(ctx context.Context, st portsession.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = copyState(st)
	r.saves++
	return nil
}

// Saves cuenta las escrituras (útil en tests).
func (r *SessionStore) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

func copyState(st portsession.State) portsession.State {
	out := portsession.State{Token: st.Token}
	if st.User != nil {
		u := st.User.Clone()
		out.User = &u
	}
	return out
}
