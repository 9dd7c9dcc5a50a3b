package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	portsession "medtap-client/internal/ports/session"
)

const (
	dirMode  = 0o700
	fileMode = 0o600

	formatVersion = 0
)

// document es el formato en disco: {"state":{...},"version":0}.
type document struct {
	State   portsession.State `json:"state"`
	Version int               `json:"version"`
}

// SessionStore persiste la sesión en <dir>/<namespace>.json.
type SessionStore struct {
	path string
}

func NewSessionStore(dir, namespace string) (*SessionStore, error) {
	dir = strings.TrimSpace(dir)
	namespace = strings.TrimSpace(namespace)
	if dir == "" || namespace == "" {
		return nil, errors.New("session dir and namespace are required")
	}
	if strings.ContainsAny(namespace, `/\`) {
		return nil, fmt.Errorf("invalid session namespace %q", namespace)
	}
	return &SessionStore{path: filepath.Join(dir, namespace+".json")}, nil
}

func (s *SessionStore) Path() string { return s.path }

// Load devuelve State{} si el archivo no existe.
func (s *SessionStore) Load(ctx context.Context) (portsession.State, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return portsession.State{}, nil
	}
	if err != nil {
		return portsession.State{}, fmt.Errorf("read session file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return portsession.State{}, fmt.Errorf("decode session file: %w", err)
	}
	if doc.Version != formatVersion {
		return portsession.State{}, fmt.Errorf("unsupported session file version %d", doc.Version)
	}
	return doc.State, nil
}

// Save reemplaza el archivo de forma atómica (temp + rename).
func (s *SessionStore) Save(ctx context.Context, st portsession.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	b, err := json.Marshal(document{State: st, Version: formatVersion})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod session file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
