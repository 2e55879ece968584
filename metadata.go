package gamefaqs

import (
	"regexp"
	"strings"
)

// ESRB rating categories in the host's canonical form.
const (
	ESRBPending    = "RP (Rating Pending)"
	ESRBEarly      = "EC (Early Childhood)"
	ESRBEveryone   = "E (Everyone)"
	ESRBEveryone10 = "E10+ (Everyone 10+)"
	ESRBTeen       = "T (Teen)"
	ESRBMature     = "M (Mature)"
	ESRBAdultsOnly = "AO (Adults Only)"
)

// DefaultPlayers is the sentinel player count used when the site offers no
// parseable value.
const DefaultPlayers = "1"

// Metadata holds the descriptive fields extracted for one game. Every
// field is independently optional: extraction fills what the pages offer
// and leaves the rest at its default rather than aborting.
type Metadata struct {
	Title         string            `json:"title"`
	Year          string            `json:"year"`
	Genre         string            `json:"genre"`
	Developer     string            `json:"developer"`
	Plot          string            `json:"plot"`
	Rating        string            `json:"rating"`
	ESRB          string            `json:"esrb"`
	Players       string            `json:"players"`
	OnlinePlayers string            `json:"onlinePlayers"`
	Extra         map[string]string `json:"extra,omitempty"`
}

// esrbTable maps the site's short rating codes to canonical categories.
var esrbTable = map[string]string{
	"e":   ESRBEveryone,
	"ec":  ESRBEarly,
	"e10": ESRBEveryone10,
	"t":   ESRBTeen,
	"m":   ESRBMature,
	"ao":  ESRBAdultsOnly,
}

// ESRBCategory maps a site short rating code to its canonical category.
// Unrecognized codes map to ESRBPending.
func ESRBCategory(code string) string {
	if category, ok := esrbTable[strings.ToLower(strings.TrimSpace(code))]; ok {
		return category
	}
	return ESRBPending
}

var playerRangeRE = regexp.MustCompile(`^(\d+)-(\d+)$`)

// NormalizePlayerCount reduces the site's player-count phrasing to a bare
// number: "1 Player" yields "1", "2-4 Players" yields the upper bound "4",
// and "Up to 8 Players" yields "8". Text that fits none of these shapes
// yields DefaultPlayers.
func NormalizePlayerCount(text string) string {
	v := strings.TrimSpace(text)
	v = strings.TrimSuffix(v, "Players")
	v = strings.TrimSuffix(v, "Player")
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "Up to ")
	v = strings.TrimSpace(v)

	if v != "" && isDigits(v) {
		return v
	}
	if m := playerRangeRE.FindStringSubmatch(v); m != nil {
		return m[2]
	}
	return DefaultPlayers
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
