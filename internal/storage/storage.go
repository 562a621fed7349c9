// Package storage provides the durable key-value facility the order store
// persists into. All backends expose the same synchronous get/set/remove
// surface; values are strings, absent keys are not errors.
package storage

// Storage is a string-valued key-value store.
//
// Get returns the stored value and whether the key was present. A missing
// key is reported via the bool, not the error. The backend may be shared
// between instances; writes are last-writer-wins with no coordination.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}
