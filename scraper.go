package gamefaqs

import "context"

// Scraper is the contract this adapter exposes to the ROM-cataloguing
// host. Operations never return errors: failures annotate the shared
// Status record and the call yields an empty or default result. A disabled
// scraper short-circuits every operation without touching the network.
type Scraper interface {
	// Name identifies the scraper to the host.
	Name() string

	// SupportsMetadata reports whether the scraper extracts metadata.
	SupportsMetadata() bool

	// SupportsAssetKind reports whether the scraper can produce assets of
	// the given kind.
	SupportsAssetKind(kind Kind) bool

	// Search returns candidates for the search term ranked best-first.
	// rom is the ROM base filename, used as the term when term is empty.
	// Returns an empty sequence when disabled or on transport failure.
	Search(ctx context.Context, term, rom, hostPlatform string, st *Status) []Candidate

	// FetchMetadata extracts the descriptive fields for a candidate.
	// Results are memoized in the persistent store: a second call for the
	// same candidate performs no network fetch.
	FetchMetadata(ctx context.Context, cand *Candidate, st *Status) Metadata

	// FetchAllAssets returns every asset offered for a candidate. The
	// images listing page is fetched at most once per candidate per run.
	FetchAllAssets(ctx context.Context, cand *Candidate, st *Status) []Asset

	// FetchAssets returns the candidate's assets of one kind. It is a pure
	// filter over the batch FetchAllAssets produces.
	FetchAssets(ctx context.Context, cand *Candidate, kind Kind, st *Status) []Asset

	// ResolveAssetURL resolves an asset to its full-resolution image URL.
	// The second return value is the URL sanitized for logging. An asset
	// with no matching full-resolution image resolves to empty strings;
	// that is a normal outcome, not a failure.
	ResolveAssetURL(ctx context.Context, asset *Asset, st *Status) (string, string)

	// ResolveAssetExtension returns the file extension (without dot) of a
	// resolved image URL, or an empty string when the URL carries none.
	ResolveAssetExtension(ctx context.Context, asset *Asset, imageURL string, st *Status) string
}
