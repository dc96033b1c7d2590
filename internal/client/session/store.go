// Package session persists the bearer credential and watches its
// validity. The token is the only durable client state; everything else
// lives in memory for the life of the process.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultCredentialFile = ".addiskitchen/credentials"

// FileTokenStore keeps the bearer token in a single file, mirrored in
// memory so reads never touch disk on the request path.
type FileTokenStore struct {
	mu       sync.RWMutex
	path     string
	token    string
	onChange []func()
}

// NewFileTokenStore opens (or prepares) the credential file. An empty
// path selects the default location under the user's home directory.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, defaultCredentialFile)
	}

	store := &FileTokenStore{path: path}
	data, err := os.ReadFile(path)
	if err == nil {
		store.token = strings.TrimSpace(string(data))
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	return store, nil
}

// Token returns the stored credential, "" when signed out
func (s *FileTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// OnChange registers a callback fired after every successful Save or
// Clear. The signed-in indicator subscribes here.
func (s *FileTokenStore) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Save persists a new credential
func (s *FileTokenStore) Save(token string) error {
	s.mu.Lock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		s.mu.Unlock()
		return err
	}
	s.token = token
	subs := append([]func(){}, s.onChange...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return nil
}

// Clear forgets the stored credential
func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		s.mu.Unlock()
		return err
	}
	subs := append([]func(){}, s.onChange...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return nil
}

// MemoryTokenStore holds a token in memory only, used by tests
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore creates a store seeded with token
func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
