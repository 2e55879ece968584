package mock

import (
	"context"

	"github.com/chrisism/gamefaqs"
)

var _ gamefaqs.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of gamefaqs.Scraper.
type Scraper struct {
	NameFn                  func() string
	SupportsMetadataFn      func() bool
	SupportsAssetKindFn     func(kind gamefaqs.Kind) bool
	SearchFn                func(ctx context.Context, term, rom, hostPlatform string, st *gamefaqs.Status) []gamefaqs.Candidate
	FetchMetadataFn         func(ctx context.Context, cand *gamefaqs.Candidate, st *gamefaqs.Status) gamefaqs.Metadata
	FetchAllAssetsFn        func(ctx context.Context, cand *gamefaqs.Candidate, st *gamefaqs.Status) []gamefaqs.Asset
	FetchAssetsFn           func(ctx context.Context, cand *gamefaqs.Candidate, kind gamefaqs.Kind, st *gamefaqs.Status) []gamefaqs.Asset
	ResolveAssetURLFn       func(ctx context.Context, asset *gamefaqs.Asset, st *gamefaqs.Status) (string, string)
	ResolveAssetExtensionFn func(ctx context.Context, asset *gamefaqs.Asset, imageURL string, st *gamefaqs.Status) string
}

func (s *Scraper) Name() string {
	return s.NameFn()
}

func (s *Scraper) SupportsMetadata() bool {
	return s.SupportsMetadataFn()
}

func (s *Scraper) SupportsAssetKind(kind gamefaqs.Kind) bool {
	return s.SupportsAssetKindFn(kind)
}

func (s *Scraper) Search(ctx context.Context, term, rom, hostPlatform string, st *gamefaqs.Status) []gamefaqs.Candidate {
	return s.SearchFn(ctx, term, rom, hostPlatform, st)
}

func (s *Scraper) FetchMetadata(ctx context.Context, cand *gamefaqs.Candidate, st *gamefaqs.Status) gamefaqs.Metadata {
	return s.FetchMetadataFn(ctx, cand, st)
}

func (s *Scraper) FetchAllAssets(ctx context.Context, cand *gamefaqs.Candidate, st *gamefaqs.Status) []gamefaqs.Asset {
	return s.FetchAllAssetsFn(ctx, cand, st)
}

func (s *Scraper) FetchAssets(ctx context.Context, cand *gamefaqs.Candidate, kind gamefaqs.Kind, st *gamefaqs.Status) []gamefaqs.Asset {
	return s.FetchAssetsFn(ctx, cand, kind, st)
}

func (s *Scraper) ResolveAssetURL(ctx context.Context, asset *gamefaqs.Asset, st *gamefaqs.Status) (string, string) {
	return s.ResolveAssetURLFn(ctx, asset, st)
}

func (s *Scraper) ResolveAssetExtension(ctx context.Context, asset *gamefaqs.Asset, imageURL string, st *gamefaqs.Status) string {
	return s.ResolveAssetExtensionFn(ctx, asset, imageURL, st)
}
