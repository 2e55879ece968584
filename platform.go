package gamefaqs

import "strings"

// SiteCodeAny is the site's catch-all platform code. Search requests built
// with it are not filtered by platform.
const SiteCodeAny = 0

// PlatformUnknown is the host platform value returned for site codes
// absent from the mapping table.
const PlatformUnknown = "unknown"

// platformEntry ties a host platform identifier to the site's numeric
// platform code and the label the site prints in search result rows.
type platformEntry struct {
	compact  string // host compact platform name
	alias    string // alternative host name, empty when none
	siteCode int
	label    string // platform label as printed by the site
}

// platformTable is the static bidirectional platform mapping. The site
// codes are the numeric identifiers GameFAQs uses in its advanced search
// form; the labels match the platform column of the results table.
var platformTable = []platformEntry{
	{"nes", "famicom", 41, "NES"},
	{"snes", "sfamicom", 63, "SNES"},
	{"n64", "nintendo64", 84, "N64"},
	{"gamecube", "ngc", 99, "GC"},
	{"wii", "", 114, "WII"},
	{"gb", "gameboy", 59, "GB"},
	{"gbc", "gameboycolor", 57, "GBC"},
	{"gba", "gameboyadvance", 91, "GBA"},
	{"nds", "ds", 108, "DS"},
	{"3ds", "", 116, "3DS"},
	{"megadrive", "genesis", 54, "GEN"},
	{"mastersystem", "sms", 49, "SMS"},
	{"gamegear", "gg", 62, "GG"},
	{"saturn", "", 76, "SAT"},
	{"dreamcast", "dc", 67, "DC"},
	{"psx", "playstation", 78, "PS"},
	{"ps2", "playstation2", 94, "PS2"},
	{"ps3", "playstation3", 113, "PS3"},
	{"psp", "", 109, "PSP"},
	{"xbox", "", 98, "XBOX"},
	{"xbox360", "x360", 111, "X360"},
	{"atari2600", "vcs", 6, "2600"},
	{"arcade", "mame", 2, "ARC"},
	{"pc", "windows", 19, "PC"},
}

// Inverse indexes built once from platformTable.
var (
	compactIndex  = make(map[string]platformEntry, len(platformTable))
	aliasIndex    = make(map[string]platformEntry, len(platformTable))
	siteCodeIndex = make(map[int]platformEntry, len(platformTable))
)

func init() {
	for _, e := range platformTable {
		compactIndex[e.compact] = e
		if e.alias != "" {
			aliasIndex[e.alias] = e
		}
		siteCodeIndex[e.siteCode] = e
	}
}

// ToSiteCode maps a host platform identifier to the site's numeric platform
// code. Lookup is by compact name first, then by declared alias. Unknown
// platforms map to SiteCodeAny; the lookup is total and never fails.
func ToSiteCode(hostPlatform string) int {
	name := strings.ToLower(strings.TrimSpace(hostPlatform))
	if e, ok := compactIndex[name]; ok {
		return e.siteCode
	}
	if e, ok := aliasIndex[name]; ok {
		return e.siteCode
	}
	return SiteCodeAny
}

// ToHostPlatform maps a site platform code back to the host's compact
// platform name. Unknown codes map to PlatformUnknown.
func ToHostPlatform(siteCode int) string {
	if e, ok := siteCodeIndex[siteCode]; ok {
		return e.compact
	}
	return PlatformUnknown
}

// SiteLabel returns the platform label the site prints in search result
// rows for the given site code, or an empty string for unknown codes.
func SiteLabel(siteCode int) string {
	if e, ok := siteCodeIndex[siteCode]; ok {
		return e.label
	}
	return ""
}
