package session

import (
	"os"
	"path/filepath"
	"strings"
)

// Store keeps the bearer credential for the current session in a file, so it
// survives process restarts the way the web client's storage survived page
// reloads. The credential is replaced wholesale on login and removed on
// logout; there is no partial update.
//
// Expiry is not enforced here. An expired credential is only discovered when
// the gateway rejects a call.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Set(credential string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(credential), 0o600)
}

func (s *Store) Get() (string, bool) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	credential := strings.TrimSpace(string(b))
	if credential == "" {
		return "", false
	}
	return credential, true
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
