package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"medtap-client/internal/domain/users"
	"medtap-client/internal/platform/logger"
	portsession "medtap-client/internal/ports/session"
)

// State es la vista de la sesión: Token vacío significa no autenticado.
type State = portsession.State

const persistTimeout = 5 * time.Second

// Reader es lo mínimo que necesitan guard y vistas.
type Reader interface {
	Token() string
	Snapshot() State
}

// Store es la única sesión del proceso. Cada mutación se persiste en orden.
type Store struct {
	mu        sync.Mutex
	state     State
	persister portsession.Persister
	log       logger.Logger
	seq       map[string]uint64
}

// New crea un store vacío (sin leer del persister).
func New(p portsession.Persister, log logger.Logger) *Store {
	if log == nil {
		log = logger.Discard()
	}
	return &Store{
		persister: p,
		log:       log.With(map[string]any{"component": "session"}),
		seq:       make(map[string]uint64),
	}
}

// Open crea el store y carga el estado persistido, una sola vez.
func Open(ctx context.Context, p portsession.Persister, log logger.Logger) (*Store, error) {
	s := New(p, log)
	if p == nil {
		return s, nil
	}
	st, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if st.User != nil {
		if err := st.User.Validate(); err != nil {
			// usuario corrupto: se descarta la sesión completa
			s.log.Warn("discarding persisted session", map[string]any{"error": err})
			return s, nil
		}
	}
	s.state = cloneState(st)
	return s, nil
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// Snapshot devuelve una copia profunda.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// SetAuth reemplaza token y usuario.
func (s *Store) SetAuth(token string, user users.SessionUser) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user.Clone()
	s.state = State{Token: token, User: &u}
	s.bumpLocked(KeyUser, KeyProfile)
	s.persistLocked()
}

// ClearAuth deja token y usuario ausentes.
func (s *Store) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	s.persistLocked()
}

// ExpireToken limpia la sesión solo si token sigue siendo el vigente.
// Devuelve true una única vez por sesión, aunque lleguen varios 401 en paralelo.
func (s *Store) ExpireToken(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" || s.state.Token != token {
		return false
	}
	s.state = State{}
	s.persistLocked()
	return true
}

// UpdateUser hace merge superficial. Sin usuario no hace nada.
func (s *Store) UpdateUser(patch users.UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return
	}
	s.state.User.User = patch.Apply(s.state.User.User)
	s.bumpLocked(KeyUser)
	s.persistLocked()
}

// UpdateProfile hace merge sobre el perfil actual; si no hay perfil, el perfil pasa a ser el patch.
func (s *Store) UpdateProfile(patch users.ProfilePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return
	}
	base := users.Profile{}
	if s.state.User.Profile != nil {
		base = *s.state.User.Profile
	}
	p := patch.Apply(base)
	s.state.User.Profile = &p
	// /auth/me trae el perfil también
	s.bumpLocked(KeyUser, KeyProfile)
	s.persistLocked()
}

func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.persister.Save(ctx, cloneState(s.state)); err != nil {
		// el estado en memoria sigue siendo la verdad
		s.log.Error("persist session failed", map[string]any{"error": err})
	}
}

func cloneState(st State) State {
	out := State{Token: st.Token}
	if st.User != nil {
		u := st.User.Clone()
		out.User = &u
	}
	return out
}
