// internal/session/session_test.go
package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbannest/storefront/internal/store"
)

func TestStoreProviderMintsOnce(t *testing.T) {
	st := store.NewMemoryStore()
	provider := NewStoreProvider(st)

	first, err := provider.GetOrCreateSessionID()
	require.NoError(t, err)
	_, err = uuid.Parse(first)
	assert.NoError(t, err)

	second, err := provider.GetOrCreateSessionID()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A fresh provider over the same store resolves the same session.
	other, err := NewStoreProvider(st).GetOrCreateSessionID()
	require.NoError(t, err)
	assert.Equal(t, first, other)
}

func TestStaticProvider(t *testing.T) {
	id, err := Static("sess-42").GetOrCreateSessionID()
	require.NoError(t, err)
	assert.Equal(t, "sess-42", id)
}
