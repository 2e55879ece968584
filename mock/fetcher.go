// Package mock provides function-field mock implementations of the domain
// interfaces for use in tests.
package mock

import (
	"context"
	"net/url"

	"github.com/chrisism/gamefaqs"
)

var _ gamefaqs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of gamefaqs.Fetcher.
type Fetcher struct {
	GetFn   func(ctx context.Context, url string) (string, int, error)
	PostFn  func(ctx context.Context, url string, form url.Values) (string, int, error)
	CloseFn func() error
}

func (f *Fetcher) Get(ctx context.Context, url string) (string, int, error) {
	return f.GetFn(ctx, url)
}

func (f *Fetcher) Post(ctx context.Context, url string, form url.Values) (string, int, error) {
	return f.PostFn(ctx, url, form)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
