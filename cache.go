package gamefaqs

import (
	"context"
	"strings"
)

// Cache namespaces. A key is unique within its namespace and always
// addresses the same (candidate, extraction-kind) pair.
const (
	NamespaceMetadata   = "metadata"
	NamespaceAssets     = "assets"
	NamespaceCandidates = "candidates"
)

// CacheStore is a namespaced key-value store for scraped payloads. The
// adapter uses two instances: a run-scoped store memoizing parsed asset
// batches, and a persistent store carrying metadata and candidate records
// across runs. Neither defines an eviction policy at this layer.
type CacheStore interface {
	// Has reports whether a payload exists under (namespace, key).
	Has(ctx context.Context, namespace, key string) (bool, error)

	// Get returns the payload stored under (namespace, key).
	// Returns ENOTFOUND if no entry exists.
	Get(ctx context.Context, namespace, key string) ([]byte, error)

	// Put stores payload under (namespace, key), replacing any previous
	// value.
	Put(ctx context.Context, namespace, key string, payload []byte) error
}

// CacheKey joins caller-supplied identifiers into a single store key.
func CacheKey(parts ...string) string {
	return strings.Join(parts, "|")
}
