// Package mem provides an in-memory implementation of gamefaqs.CacheStore,
// used as the run-scoped memoization store.
package mem

import (
	"context"
	"sync"

	"github.com/chrisism/gamefaqs"
)

// Ensure Store implements gamefaqs.CacheStore at compile time.
var _ gamefaqs.CacheStore = (*Store)(nil)

// Store is a mutex-guarded map store. The lock covers the whole
// read-modify-write-on-miss sequence, so sharing one adapter instance
// across concurrent lookups cannot corrupt the map.
type Store struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{entries: make(map[string][]byte)}
}

// Has reports whether a payload exists under (namespace, key).
func (s *Store) Has(_ context.Context, namespace, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[entryKey(namespace, key)]
	return ok, nil
}

// Get returns the payload stored under (namespace, key).
// Returns ENOTFOUND if no entry exists.
func (s *Store) Get(_ context.Context, namespace, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok := s.entries[entryKey(namespace, key)]
	if !ok {
		return nil, gamefaqs.Errorf(gamefaqs.ENOTFOUND, "no cache entry for %s/%s", namespace, key)
	}
	return payload, nil
}

// Put stores payload under (namespace, key), replacing any previous value.
func (s *Store) Put(_ context.Context, namespace, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entryKey(namespace, key)] = payload
	return nil
}

// entryKey scopes a key by its namespace. The NUL separator cannot occur
// in either part.
func entryKey(namespace, key string) string {
	return namespace + "\x00" + key
}
