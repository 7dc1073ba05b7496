package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
)

// Storage keys, named after the localStorage keys the web client used.
const (
	keyCurrentUser = "currentUser"
	keyToken       = "token"
	keyAccounts    = "accounts"
	keyTheme       = "theme"
)

// Store is a file-backed key-value store: the durable browser-side storage
// of the original client, persisted as one JSON document. Safe for
// concurrent use; every mutation is written through to disk.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// Open loads (or creates) the store file.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: map[string]json.RawMessage{}}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// first run
	case err != nil:
		return nil, fmt.Errorf("open local store: %w", err)
	default:
		if err := json.Unmarshal(raw, &s.data); err != nil {
			// A corrupt store behaves like cleared storage rather than
			// wedging the app.
			s.data = map[string]json.RawMessage{}
		}
	}
	return s, nil
}

func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *Store) set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flush()
}

// get decodes key into out; reports whether the key existed.
func (s *Store) get(key string, out any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// SaveUser persists the current user record.
func (s *Store) SaveUser(user entity.User) error {
	return s.set(keyCurrentUser, user)
}

// LoadUser returns the cached user record, or nil when none is stored.
func (s *Store) LoadUser() (*entity.User, error) {
	var u entity.User
	ok, err := s.get(keyCurrentUser, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes the current user record.
func (s *Store) DeleteUser() error {
	return s.delete(keyCurrentUser)
}

// SaveToken persists the bearer token.
func (s *Store) SaveToken(token string) error {
	return s.set(keyToken, token)
}

// LoadToken returns the stored token, or "" when none is stored.
func (s *Store) LoadToken() (string, error) {
	var t string
	ok, err := s.get(keyToken, &t)
	if err != nil || !ok {
		return "", err
	}
	return t, nil
}

// DeleteToken removes the bearer token.
func (s *Store) DeleteToken() error {
	return s.delete(keyToken)
}

// SaveAccounts persists the local multi-account list. Passwords are stored
// as-is; see entity.Account.
func (s *Store) SaveAccounts(accounts []entity.Account) error {
	return s.set(keyAccounts, accounts)
}

// LoadAccounts returns the local multi-account list (empty when unset).
func (s *Store) LoadAccounts() ([]entity.Account, error) {
	var accounts []entity.Account
	if _, err := s.get(keyAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// SaveTheme persists the UI theme preference.
func (s *Store) SaveTheme(theme string) error {
	return s.set(keyTheme, theme)
}

// LoadTheme returns the stored theme, defaulting to "light".
func (s *Store) LoadTheme() (string, error) {
	var t string
	ok, err := s.get(keyTheme, &t)
	if err != nil {
		return "", err
	}
	if !ok || t == "" {
		return "light", nil
	}
	return t, nil
}
