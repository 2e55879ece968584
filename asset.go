package gamefaqs

import "strings"

// Kind classifies an artwork asset.
type Kind int

// Asset kinds the site offers.
const (
	KindTitle Kind = iota
	KindSnapshot
	KindBoxFront
	KindBoxBack
)

// String returns the host-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindSnapshot:
		return "snap"
	case KindBoxFront:
		return "boxfront"
	case KindBoxBack:
		return "boxback"
	}
	return "unknown"
}

// ParseKind maps a host-facing kind name to its Kind value.
// Returns EINVALID for unrecognized names.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "title":
		return KindTitle, nil
	case "snap", "snapshot":
		return KindSnapshot, nil
	case "boxfront":
		return KindBoxFront, nil
	case "boxback":
		return KindBoxBack, nil
	}
	return 0, Errorf(EINVALID, "unknown asset kind %q", name)
}

// KindSet is a small set of asset kinds, as produced by the title
// classifier.
type KindSet []Kind

// Contains reports whether the set includes the given kind.
func (s KindSet) Contains(k Kind) bool {
	for _, v := range s {
		if v == k {
			return true
		}
	}
	return false
}

// ClassifyTitle maps a listing-block title or image alt text to the asset
// kinds it can contain. "Video" blocks carry no scrapeable artwork and
// classify to an empty set; titles matching none of the known markers
// default to Snapshot.
func ClassifyTitle(title string) KindSet {
	switch {
	case strings.Contains(title, "Video"):
		return nil
	case strings.Contains(title, "Screenshots"):
		return KindSet{KindSnapshot, KindTitle}
	case strings.Contains(title, "Box Back"):
		return KindSet{KindBoxBack}
	case strings.Contains(title, "Box Front"):
		return KindSet{KindBoxFront}
	case strings.Contains(title, "Box"):
		return KindSet{KindBoxFront, KindBoxBack}
	}
	return KindSet{KindSnapshot}
}

// Asset references one artwork image offered for a candidate. An Asset
// points at a thumbnail plus the detail page that hosts the full-resolution
// version; resolving the full image is a separate fetch.
type Asset struct {
	Kind          Kind   `json:"kind"`
	DisplayName   string `json:"displayName"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	DetailPageURL string `json:"detailPageUrl"` // site-relative path
	OnListingPage bool   `json:"onListingPage"`
}

// FilterAssets returns the subsequence of assets matching the given kind.
// It is a pure post-filter over an already-parsed batch.
func FilterAssets(assets []Asset, kind Kind) []Asset {
	var filtered []Asset
	for _, a := range assets {
		if a.Kind == kind {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
