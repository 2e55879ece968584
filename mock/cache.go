package mock

import (
	"context"

	"github.com/chrisism/gamefaqs"
)

var _ gamefaqs.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of gamefaqs.CacheStore.
type CacheStore struct {
	HasFn func(ctx context.Context, namespace, key string) (bool, error)
	GetFn func(ctx context.Context, namespace, key string) ([]byte, error)
	PutFn func(ctx context.Context, namespace, key string, payload []byte) error
}

func (s *CacheStore) Has(ctx context.Context, namespace, key string) (bool, error) {
	return s.HasFn(ctx, namespace, key)
}

func (s *CacheStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	return s.GetFn(ctx, namespace, key)
}

func (s *CacheStore) Put(ctx context.Context, namespace, key string, payload []byte) error {
	return s.PutFn(ctx, namespace, key, payload)
}
