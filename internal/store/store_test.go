// internal/store/store_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("cart:sess-1", `{"items":[]}`))
	value, ok, err := s.Get("cart:sess-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"items":[]}`, value)

	require.NoError(t, s.Set("cart:sess-1", "updated"))
	value, _, _ = s.Get("cart:sess-1")
	assert.Equal(t, "updated", value)

	require.NoError(t, s.Remove("cart:sess-1"))
	_, ok, err = s.Get("cart:sess-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is not an error.
	require.NoError(t, s.Remove("cart:sess-1"))
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	// Keys with separators must be filesystem-safe.
	key := "wishlist:sess/with:odd*chars"
	require.NoError(t, s.Set(key, "payload"))

	value, ok, err := s.Get(key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "payload", value)

	// A second store over the same directory sees the data.
	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	value, ok, err = reopened.Get(key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "payload", value)

	require.NoError(t, s.Remove(key))
	_, ok, err = s.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Remove(key))
}
