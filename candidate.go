package gamefaqs

import (
	"sort"
	"strings"
)

// Candidate represents one search-result entry: a possible match for the
// game being scraped. Candidates are created fresh per search and are not
// mutated afterwards except for list ordering.
type Candidate struct {
	// ID is the site-relative path of the game's detail page,
	// e.g. "/nes/578318-castlevania". It doubles as the cache key for
	// metadata and asset records.
	ID string `json:"id"`

	// DisplayName is the human-readable "game / platform" label shown to
	// the user when picking among candidates.
	DisplayName string `json:"displayName"`

	// GameName is the title as printed in the results row.
	GameName string `json:"gameName"`

	// Platform is the host's platform identifier the search was issued for.
	Platform string `json:"platform"`

	// ScraperPlatform is the site's numeric platform code used in the
	// search request.
	ScraperPlatform int `json:"scraperPlatform"`

	// Score ranks the candidate against the search term; see ScoreCandidate.
	Score int `json:"score"`
}

// CacheKey returns the identifier addressing cached records for this
// candidate in the persistent store.
func (c *Candidate) CacheKey() string {
	return c.ID
}

// ScoreCandidate computes the rank score of a results row against the
// search term. Scores start at 1 and three bonuses apply independently:
// case-insensitive exact title match, case-insensitive substring
// containment of the term in the title, and — only when a specific platform
// was requested — the row's platform label matching the requested code.
// An exact match therefore also collects the substring bonus; the maximum
// score is 4.
func ScoreCandidate(gameName, platformLabel, term string, siteCode int) int {
	score := 1
	title := strings.ToLower(gameName)
	query := strings.ToLower(term)
	if title == query {
		score++
	}
	if strings.Contains(title, query) {
		score++
	}
	if siteCode != SiteCodeAny && strings.EqualFold(platformLabel, SiteLabel(siteCode)) {
		score++
	}
	return score
}

// RankCandidates sorts candidates by non-increasing score. The sort is
// stable: ties keep the order the rows appeared on the results page.
func RankCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}
