// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/chrisism/gamefaqs"
)

// Ensure LoggingScraper implements gamefaqs.Scraper.
var _ gamefaqs.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with structured logging of every
// operation, its duration and its outcome.
type LoggingScraper struct {
	next   gamefaqs.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next gamefaqs.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Name delegates to the wrapped scraper.
func (s *LoggingScraper) Name() string {
	return s.next.Name()
}

// SupportsMetadata delegates to the wrapped scraper.
func (s *LoggingScraper) SupportsMetadata() bool {
	return s.next.SupportsMetadata()
}

// SupportsAssetKind delegates to the wrapped scraper.
func (s *LoggingScraper) SupportsAssetKind(kind gamefaqs.Kind) bool {
	return s.next.SupportsAssetKind(kind)
}

// Search delegates and logs the term, platform, candidate count and
// duration.
func (s *LoggingScraper) Search(ctx context.Context, term, rom, hostPlatform string, st *gamefaqs.Status) []gamefaqs.Candidate {
	begin := time.Now()
	candidates := s.next.Search(ctx, term, rom, hostPlatform, st)
	s.log(st, "search",
		"term", term,
		"platform", hostPlatform,
		"candidates", len(candidates),
		"duration", time.Since(begin),
	)
	return candidates
}

// FetchMetadata delegates and logs the candidate and duration.
func (s *LoggingScraper) FetchMetadata(ctx context.Context, cand *gamefaqs.Candidate, st *gamefaqs.Status) gamefaqs.Metadata {
	begin := time.Now()
	md := s.next.FetchMetadata(ctx, cand, st)
	s.log(st, "fetch metadata",
		"candidate", candidateID(cand),
		"duration", time.Since(begin),
	)
	return md
}

// FetchAllAssets delegates and logs the candidate, asset count and
// duration.
func (s *LoggingScraper) FetchAllAssets(ctx context.Context, cand *gamefaqs.Candidate, st *gamefaqs.Status) []gamefaqs.Asset {
	begin := time.Now()
	assets := s.next.FetchAllAssets(ctx, cand, st)
	s.log(st, "fetch all assets",
		"candidate", candidateID(cand),
		"assets", len(assets),
		"duration", time.Since(begin),
	)
	return assets
}

// FetchAssets delegates and logs the candidate, kind, asset count and
// duration.
func (s *LoggingScraper) FetchAssets(ctx context.Context, cand *gamefaqs.Candidate, kind gamefaqs.Kind, st *gamefaqs.Status) []gamefaqs.Asset {
	begin := time.Now()
	assets := s.next.FetchAssets(ctx, cand, kind, st)
	s.log(st, "fetch assets",
		"candidate", candidateID(cand),
		"kind", kind.String(),
		"assets", len(assets),
		"duration", time.Since(begin),
	)
	return assets
}

// ResolveAssetURL delegates and logs the asset page, resolved URL and
// duration. The sanitized log URL is logged, never the raw one.
func (s *LoggingScraper) ResolveAssetURL(ctx context.Context, asset *gamefaqs.Asset, st *gamefaqs.Status) (string, string) {
	begin := time.Now()
	resolved, logURL := s.next.ResolveAssetURL(ctx, asset, st)
	s.log(st, "resolve asset url",
		"url", logURL,
		"resolved", resolved != "",
		"duration", time.Since(begin),
	)
	return resolved, logURL
}

// ResolveAssetExtension delegates and logs the extension.
func (s *LoggingScraper) ResolveAssetExtension(ctx context.Context, asset *gamefaqs.Asset, imageURL string, st *gamefaqs.Status) string {
	ext := s.next.ResolveAssetExtension(ctx, asset, imageURL, st)
	s.log(st, "resolve asset extension", "extension", ext)
	return ext
}

func (s *LoggingScraper) log(st *gamefaqs.Status, op string, args ...any) {
	if st != nil && !st.OK {
		args = append(args, "error_code", st.Code, "error", st.Message)
		s.logger.Warn(op, args...)
		return
	}
	s.logger.Info(op, args...)
}

func candidateID(cand *gamefaqs.Candidate) string {
	if cand == nil {
		return ""
	}
	return cand.ID
}
