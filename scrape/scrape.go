// Package scrape coordinates the GameFAQs scraping pipeline: candidate
// search, metadata extraction, asset listing and full-resolution image
// resolution, with run-scoped and persistent caching around every
// fetch-dependent operation.
//
// Operations are synchronous and issue no concurrent fetches of their own.
// The run-scoped cache is mutex-guarded (see mem.Store), so one Scraper
// instance may be shared across concurrent lookups by the host.
package scrape

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/chrisism/gamefaqs"
	gfquery "github.com/chrisism/gamefaqs/goquery"
	"github.com/chrisism/gamefaqs/mem"
)

// DefaultBaseURL is the site root all relative paths resolve against.
const DefaultBaseURL = "https://gamefaqs.gamespot.com"

// Ensure Scraper implements gamefaqs.Scraper at compile time.
var _ gamefaqs.Scraper = (*Scraper)(nil)

// Scraper implements the host-facing scraping contract against GameFAQs.
type Scraper struct {
	fetcher    gamefaqs.Fetcher
	run        gamefaqs.CacheStore // run-scoped memoization (asset batches)
	persistent gamefaqs.CacheStore // cross-run store (metadata, candidates, assets)
	baseURL    string
	disabled   bool
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithBaseURL overrides the site root. Used by tests pointing the scraper
// at a fixture server.
func WithBaseURL(u string) Option {
	return func(s *Scraper) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

// WithDisabled creates the scraper in the disabled state: every operation
// short-circuits to an empty result without touching the network.
func WithDisabled(disabled bool) Option {
	return func(s *Scraper) {
		s.disabled = disabled
	}
}

// WithPersistentCache sets the cross-run cache store. Defaults to an
// in-memory store, which degrades the cross-run cache to run scope.
func WithPersistentCache(store gamefaqs.CacheStore) Option {
	return func(s *Scraper) {
		s.persistent = store
	}
}

// WithRunCache sets the run-scoped memoization store.
func WithRunCache(store gamefaqs.CacheStore) Option {
	return func(s *Scraper) {
		s.run = store
	}
}

// New creates a Scraper using the given transport.
func New(fetcher gamefaqs.Fetcher, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher:    fetcher,
		run:        mem.NewStore(),
		persistent: mem.NewStore(),
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the scraper to the host.
func (s *Scraper) Name() string { return "GameFAQs" }

// SupportsMetadata reports whether the scraper extracts metadata.
func (s *Scraper) SupportsMetadata() bool { return true }

// SupportsAssetKind reports whether the scraper can produce assets of the
// given kind.
func (s *Scraper) SupportsAssetKind(kind gamefaqs.Kind) bool {
	switch kind {
	case gamefaqs.KindTitle, gamefaqs.KindSnapshot, gamefaqs.KindBoxFront, gamefaqs.KindBoxBack:
		return true
	}
	return false
}

// Search issues an advanced search and returns candidates ranked
// best-first. Only the first results page is consulted. Results are cached
// in the persistent store keyed by (term, site platform code).
func (s *Scraper) Search(ctx context.Context, term, rom, hostPlatform string, st *gamefaqs.Status) []gamefaqs.Candidate {
	st = ensure(st)
	if s.disabled {
		return nil
	}
	if term == "" {
		term = rom
	}

	siteCode := gamefaqs.ToSiteCode(hostPlatform)
	cacheKey := gamefaqs.CacheKey(term, strconv.Itoa(siteCode))

	if payload, err := s.persistent.Get(ctx, gamefaqs.NamespaceCandidates, cacheKey); err == nil {
		var cached []gamefaqs.Candidate
		if json.Unmarshal(payload, &cached) == nil {
			return cached
		}
	}

	form := url.Values{
		"game":     {term},
		"platform": {strconv.Itoa(siteCode)},
	}
	body, status, err := s.fetcher.Post(ctx, s.baseURL+"/search_advanced", form)
	if err != nil {
		st.Failf(gamefaqs.ETRANSPORT, "search for %q failed: %v", term, err)
		return nil
	}
	if status != http.StatusOK {
		st.Failf(gamefaqs.ETRANSPORT, "search for %q failed: HTTP %d", term, status)
		return nil
	}

	rows, err := gfquery.ParseSearchResults(body)
	if err != nil {
		st.Failf(gamefaqs.EINVALID, "search for %q: %v", term, err)
		return nil
	}

	candidates := make([]gamefaqs.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, gamefaqs.Candidate{
			ID:              row.Path,
			DisplayName:     row.Title + " / " + row.PlatformLabel,
			GameName:        row.Title,
			Platform:        hostPlatform,
			ScraperPlatform: siteCode,
			Score:           gamefaqs.ScoreCandidate(row.Title, row.PlatformLabel, term, siteCode),
		})
	}
	gamefaqs.RankCandidates(candidates)

	s.store(ctx, gamefaqs.NamespaceCandidates, cacheKey, candidates)

	return candidates
}

// FetchMetadata extracts the descriptive fields for a candidate from its
// detail page and data sub-page. A persistent-cache hit short-circuits
// with no network access.
func (s *Scraper) FetchMetadata(ctx context.Context, cand *gamefaqs.Candidate, st *gamefaqs.Status) gamefaqs.Metadata {
	st = ensure(st)
	md := gamefaqs.Metadata{
		ESRB:          gamefaqs.ESRBPending,
		Players:       gamefaqs.DefaultPlayers,
		OnlinePlayers: gamefaqs.DefaultPlayers,
	}
	if s.disabled || cand == nil {
		return md
	}

	if payload, err := s.persistent.Get(ctx, gamefaqs.NamespaceMetadata, cand.CacheKey()); err == nil {
		var cached gamefaqs.Metadata
		if json.Unmarshal(payload, &cached) == nil {
			return cached
		}
	}

	body, status, err := s.fetcher.Get(ctx, s.baseURL+cand.ID)
	if err != nil {
		st.Failf(gamefaqs.ETRANSPORT, "metadata fetch for %s failed: %v", cand.ID, err)
		return md
	}
	if status != http.StatusOK {
		st.Failf(gamefaqs.ETRANSPORT, "metadata fetch for %s failed: HTTP %d", cand.ID, status)
		return md
	}

	// The data sub-page carries the player-count fields. Its failure is
	// non-fatal: the counts fall back to their defaults.
	dataBody, dataStatus, dataErr := s.fetcher.Get(ctx, s.baseURL+cand.ID+"/data")
	if dataErr != nil || dataStatus != http.StatusOK {
		dataBody = ""
	}

	md.Title = cand.GameName
	md.Year = gfquery.ExtractYear(body)
	md.Genre = gfquery.ExtractGenre(body)
	md.Developer = gfquery.ExtractDeveloper(body)
	md.Plot = gfquery.ExtractPlot(body)
	md.Rating = gfquery.ExtractRating(body)
	md.ESRB = gamefaqs.ESRBCategory(gfquery.ExtractESRBCode(body))
	md.Players = gamefaqs.NormalizePlayerCount(gfquery.ExtractLocalPlayers(dataBody))
	md.OnlinePlayers = gamefaqs.NormalizePlayerCount(gfquery.ExtractOnlinePlayers(dataBody))

	extra := map[string]string{}
	if v := gfquery.ExtractReleaseDate(body); v != "" {
		extra["release"] = v
	}
	if v := gfquery.ExtractPublisher(body); v != "" {
		extra["publisher"] = v
	}
	if v := gfquery.ExtractFranchise(body); v != "" {
		extra["franchise"] = v
	}
	if len(extra) > 0 {
		md.Extra = extra
	}

	s.store(ctx, gamefaqs.NamespaceMetadata, cand.CacheKey(), md)

	return md
}

// FetchAllAssets returns every asset offered on the candidate's images
// listing page. The page is fetched at most once per candidate per run:
// parsed batches are memoized run-scoped and persisted across runs.
func (s *Scraper) FetchAllAssets(ctx context.Context, cand *gamefaqs.Candidate, st *gamefaqs.Status) []gamefaqs.Asset {
	st = ensure(st)
	if s.disabled || cand == nil {
		return nil
	}

	key := cand.CacheKey()
	if payload, err := s.run.Get(ctx, gamefaqs.NamespaceAssets, key); err == nil {
		var cached []gamefaqs.Asset
		if json.Unmarshal(payload, &cached) == nil {
			return cached
		}
	}
	if payload, err := s.persistent.Get(ctx, gamefaqs.NamespaceAssets, key); err == nil {
		var cached []gamefaqs.Asset
		if json.Unmarshal(payload, &cached) == nil {
			_ = s.run.Put(ctx, gamefaqs.NamespaceAssets, key, payload)
			return cached
		}
	}

	body, status, err := s.fetcher.Get(ctx, s.baseURL+cand.ID+"/images")
	if err != nil {
		st.Failf(gamefaqs.ETRANSPORT, "asset fetch for %s failed: %v", cand.ID, err)
		return nil
	}
	if status != http.StatusOK {
		st.Failf(gamefaqs.ETRANSPORT, "asset fetch for %s failed: HTTP %d", cand.ID, status)
		return nil
	}

	blocks, err := gfquery.ParseImageBlocks(body)
	if err != nil {
		st.Failf(gamefaqs.EINVALID, "asset fetch for %s: %v", cand.ID, err)
		return nil
	}

	assets := assembleAssets(blocks)

	if payload, err := json.Marshal(assets); err == nil {
		_ = s.run.Put(ctx, gamefaqs.NamespaceAssets, key, payload)
		_ = s.persistent.Put(ctx, gamefaqs.NamespaceAssets, key, payload)
	}

	return assets
}

// FetchAssets returns the candidate's assets of one kind. It is a pure
// post-filter over the batch FetchAllAssets produces and performs no I/O
// of its own.
func (s *Scraper) FetchAssets(ctx context.Context, cand *gamefaqs.Candidate, kind gamefaqs.Kind, st *gamefaqs.Status) []gamefaqs.Asset {
	return gamefaqs.FilterAssets(s.FetchAllAssets(ctx, cand, st), kind)
}

// ResolveAssetURL fetches the asset's detail page and returns the first
// full-resolution image URL whose classified kinds include the asset's
// kind. An asset with no matching image resolves to empty strings without
// annotating the status; that is a normal outcome.
func (s *Scraper) ResolveAssetURL(ctx context.Context, asset *gamefaqs.Asset, st *gamefaqs.Status) (string, string) {
	st = ensure(st)
	if s.disabled || asset == nil {
		return "", ""
	}

	body, status, err := s.fetcher.Get(ctx, s.baseURL+asset.DetailPageURL)
	if err != nil {
		st.Failf(gamefaqs.ETRANSPORT, "resolve of %s failed: %v", asset.DetailPageURL, err)
		return "", ""
	}
	if status != http.StatusOK {
		st.Failf(gamefaqs.ETRANSPORT, "resolve of %s failed: HTTP %d", asset.DetailPageURL, status)
		return "", ""
	}

	images, err := gfquery.ParseFullImages(body)
	if err != nil {
		st.Failf(gamefaqs.EINVALID, "resolve of %s: %v", asset.DetailPageURL, err)
		return "", ""
	}

	for _, img := range images {
		if gamefaqs.ClassifyTitle(img.Alt).Contains(asset.Kind) {
			return img.URL, cleanURLForLog(img.URL)
		}
	}

	return "", ""
}

// ResolveAssetExtension returns the file extension of a resolved image URL
// without the leading dot, or an empty string when the URL carries none.
func (s *Scraper) ResolveAssetExtension(_ context.Context, _ *gamefaqs.Asset, imageURL string, st *gamefaqs.Status) string {
	_ = ensure(st)
	if s.disabled {
		return ""
	}

	u, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), "."))
}

// assembleAssets classifies each parsed block and emits one Asset per
// applicable kind per entry. Inside a Screenshots-classified block exactly
// one entry is the title screen: the first one, per the site's convention
// of listing the title shot first on an unpaginated listing. It emits both
// its Title and its Snapshot asset.
func assembleAssets(blocks []gfquery.ImageBlock) []gamefaqs.Asset {
	var assets []gamefaqs.Asset
	for _, block := range blocks {
		kinds := gamefaqs.ClassifyTitle(block.Title)
		if len(kinds) == 0 {
			continue
		}

		titleTaken := false
		for _, entry := range block.Entries {
			for _, kind := range kinds {
				if kind == gamefaqs.KindTitle {
					if titleTaken {
						continue
					}
					titleTaken = true
				}
				assets = append(assets, gamefaqs.Asset{
					Kind:          kind,
					DisplayName:   entry.Alt,
					ThumbnailURL:  entry.ThumbURL,
					DetailPageURL: entry.DetailPath,
					OnListingPage: true,
				})
			}
		}
	}
	return assets
}

// store marshals and persists a record, ignoring cache write failures: a
// broken cache degrades to refetching, never to a failed operation.
func (s *Scraper) store(ctx context.Context, namespace, key string, record any) {
	if payload, err := json.Marshal(record); err == nil {
		_ = s.persistent.Put(ctx, namespace, key, payload)
	}
}

// cleanURLForLog strips query parameters so session tokens never reach the
// logs.
func cleanURLForLog(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i]
	}
	return u
}

// ensure returns st, or a fresh status when the host passed nil.
func ensure(st *gamefaqs.Status) *gamefaqs.Status {
	if st == nil {
		return gamefaqs.NewStatus()
	}
	return st
}
