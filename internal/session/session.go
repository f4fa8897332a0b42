// internal/session/session.go
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/urbannest/storefront/internal/store"
)

// Provider hands out the session identifier that namespaces cart and
// wishlist state. Engines never read session keys ad hoc.
type Provider interface {
	GetOrCreateSessionID() (string, error)
}

const sessionKey = "session:id"

// StoreProvider lazily mints one session id and persists it, so every
// engine sharing the store sees the same session.
type StoreProvider struct {
	store store.Store
}

func NewStoreProvider(s store.Store) *StoreProvider {
	return &StoreProvider{store: s}
}

func (p *StoreProvider) GetOrCreateSessionID() (string, error) {
	id, ok, err := p.store.Get(sessionKey)
	if err != nil {
		return "", fmt.Errorf("failed to read session id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}
	id = uuid.New().String()
	if err := p.store.Set(sessionKey, id); err != nil {
		return "", fmt.Errorf("failed to persist session id: %w", err)
	}
	return id, nil
}

// Static is a provider pinned to a known session id, used when the
// session is established elsewhere (e.g. an HTTP cookie).
type Static string

func (s Static) GetOrCreateSessionID() (string, error) {
	return string(s), nil
}
