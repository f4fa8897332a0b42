// internal/store/store.go
package store

// Store is the key-value persistence boundary the commerce engines
// write their snapshots through. The same engine logic runs against an
// in-memory map, a file directory, or Redis.
type Store interface {
	// Get returns the stored value and whether the key exists. A missing
	// key is not an error.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}
