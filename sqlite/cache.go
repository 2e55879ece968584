package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/chrisism/gamefaqs"
)

// Compile-time interface verification.
var _ gamefaqs.CacheStore = (*CacheService)(nil)

// CacheService implements gamefaqs.CacheStore on SQLite. It backs the
// cross-run persistent cache for metadata, asset and candidate records.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// hashPayload computes xxHash of a payload and returns it as a hex string.
// The hash is stored alongside the payload so that callers comparing runs
// can detect site-side changes without decoding records.
func hashPayload(payload []byte) string {
	h := xxhash.Sum64(payload)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// Has reports whether a payload exists under (namespace, key).
func (s *CacheService) Has(ctx context.Context, namespace, key string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM cache_entries WHERE namespace = ? AND key = ?
	`, namespace, key).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Get returns the payload stored under (namespace, key).
// Returns ENOTFOUND if no entry exists.
func (s *CacheService) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM cache_entries WHERE namespace = ? AND key = ?
	`, namespace, key).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, gamefaqs.Errorf(gamefaqs.ENOTFOUND, "no cache entry for %s/%s", namespace, key)
	}
	if err != nil {
		return nil, err
	}

	return payload, nil
}

// Put stores payload under (namespace, key), replacing any previous value.
func (s *CacheService) Put(ctx context.Context, namespace, key string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (namespace, key, payload, payload_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (namespace, key) DO UPDATE SET
			payload = excluded.payload,
			payload_hash = excluded.payload_hash,
			created_at = excluded.created_at
	`, namespace, key, payload, hashPayload(payload), time.Now().UTC().Format(time.RFC3339))

	return err
}
