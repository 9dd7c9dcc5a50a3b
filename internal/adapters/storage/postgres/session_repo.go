package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medtap-client/internal/domain/users"
	portsession "medtap-client/internal/ports/session"
)

// SessionRepo guarda una fila por namespace en client_sessions.
type SessionRepo struct {
	db        *sql.DB
	namespace string
	now       func() time.Time
}

func NewSessionRepo(db *sql.DB, namespace string) *SessionRepo {
	return &SessionRepo{db: db, namespace: namespace, now: time.Now}
}

func (r *SessionRepo) Load(ctx context.Context) (portsession.State, error) {
	var (
		token    string
		userData []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT token, user_data
		FROM client_sessions
		WHERE namespace = $1
	`, r.namespace).Scan(&token, &userData)
	if errors.Is(err, sql.ErrNoRows) {
		return portsession.State{}, nil
	}
	if err != nil {
		return portsession.State{}, err
	}

	st := portsession.State{Token: token}
	if len(userData) > 0 && string(userData) != "null" {
		var u users.SessionUser
		if err := json.Unmarshal(userData, &u); err != nil {
			return portsession.State{}, fmt.Errorf("decode user_data: %w", err)
		}
		st.User = &u
	}
	return st, nil
}

func (r *SessionRepo) Save(ctx context.Context, st portsession.State) error {
	var userData []byte
	if st.User != nil {
		b, err := json.Marshal(st.User)
		if err != nil {
			return fmt.Errorf("encode user_data: %w", err)
		}
		userData = b
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO client_sessions (namespace, token, user_data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (namespace) DO UPDATE
		SET token = EXCLUDED.token,
			user_data = EXCLUDED.user_data,
			updated_at = EXCLUDED.updated_at
	`,
		r.namespace,
		st.Token,
		nullJSON(userData),
		r.now().UTC(),
	)
	return err
}

func nullJSON(b []byte) any {
	if b == nil {
		return nil
	}
	return string(b)
}
