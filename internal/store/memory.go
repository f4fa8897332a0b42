// internal/store/memory.go
package store

import "sync"

// MemoryStore keeps values in a map. It is the default backend and the
// one tests run against.
type MemoryStore struct {
	mtx    sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.values, key)
	return nil
}
