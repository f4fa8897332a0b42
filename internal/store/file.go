// internal/store/file.go
package store

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists each key as one file under a directory. Keys are
// encoded so separators like "cart:sess-1" stay filesystem-safe.
type FileStore struct {
	mtx sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	name := base64.URLEncoding.EncodeToString([]byte(key))
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return string(data), true, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Remove(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}
