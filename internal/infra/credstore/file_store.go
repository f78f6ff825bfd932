// Package credstore persists the session token in a file scoped to the
// current user, mirroring the mobile app's key-value credential slot.
package credstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"agrodoctor/internal/domain/repository"

	"github.com/pkg/errors"
)

const tokenFileMode = 0o600

// FileStore keeps the single bearer token in a plain file. Writes happen
// only on login and logout, so a mutex is all the coordination needed.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// New returns a FileStore rooted at path. An empty path resolves to
// <user config dir>/agrodoctor/token.
func New(path string) (repository.CredentialStore, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolve user config dir")
		}
		path = filepath.Join(configDir, "agrodoctor", "token")
	}

	return &FileStore{path: path}, nil
}

// Save replaces the stored token.
func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create token dir")
	}

	if err := os.WriteFile(s.path, []byte(token), tokenFileMode); err != nil {
		return errors.Wrap(err, "write token")
	}

	return nil
}

// Load returns the stored token, or ok=false when none is held.
func (s *FileStore) Load() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}

		return "", false, errors.Wrap(err, "read token")
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false, nil
	}

	return token, true, nil
}

// Clear removes the stored token. Clearing twice in a row is fine.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove token")
	}

	return nil
}
