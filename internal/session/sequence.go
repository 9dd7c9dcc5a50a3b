package session

import "medtap-client/internal/domain/users"

// Keys de secuencia. Una escritura local sobre el usuario o el perfil avanza
// la key correspondiente, así una respuesta remota anterior no la pisa.
const (
	KeyUser    = "me"
	KeyProfile = "profile"
)

// Ticket identifica una carga en curso. Solo la última de cada key puede escribir.
type Ticket struct {
	key   string
	n     uint64
	token string
}

// Begin emite un ticket nuevo para key, invalidando los anteriores.
func (s *Store) Begin(key string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq[key]++
	return Ticket{key: key, n: s.seq[key], token: s.state.Token}
}

// bumpLocked invalida los tickets emitidos para keys.
func (s *Store) bumpLocked(keys ...string) {
	for _, k := range keys {
		s.seq[k]++
	}
}

func (s *Store) currentLocked(t Ticket) bool {
	return s.seq[t.key] == t.n && s.state.Token != "" && s.state.Token == t.token
}

// RefreshUser reemplaza el usuario cacheado con la respuesta de /auth/me si t sigue vigente.
func (s *Store) RefreshUser(t Ticket, u users.SessionUser) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentLocked(t) {
		s.log.Debug("stale user response dropped", map[string]any{"key": t.key, "ticket": t.n})
		return false
	}
	c := u.Clone()
	s.state.User = &c
	s.persistLocked()
	return true
}

// RefreshProfile reemplaza el perfil cacheado si t sigue vigente y hay usuario.
func (s *Store) RefreshProfile(t Ticket, p users.Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentLocked(t) || s.state.User == nil {
		s.log.Debug("stale profile response dropped", map[string]any{"key": t.key, "ticket": t.n})
		return false
	}
	c := p.Clone()
	s.state.User.Profile = &c
	s.persistLocked()
	return true
}
