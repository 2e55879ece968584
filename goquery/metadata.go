package goquery

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var yearRE = regexp.MustCompile(`\d{4}`)

// ExtractYear returns the four-digit release year from a game detail page,
// or an empty string when the release line is absent. The site prints full
// dates ("August 13, 1991") as well as bare month-year forms.
func ExtractYear(html string) string {
	return yearRE.FindString(fieldAfterLabel(html, "Release:"))
}

// ExtractReleaseDate returns the full release date text from a game detail
// page, e.g. "August 13, 1991".
func ExtractReleaseDate(html string) string {
	return fieldAfterLabel(html, "Release:")
}

// ExtractGenre returns the first (primary) genre from a game detail page.
// The site chains sub-genres behind the primary one; only the first link
// is taken.
func ExtractGenre(html string) string {
	return fieldAfterLabel(html, "Genre:")
}

// ExtractDeveloper returns the developer from a game detail page. The site
// prints either a combined "Developer/Publisher" line or a separate
// "Developer" line; the combined form wins when both match.
func ExtractDeveloper(html string) string {
	if dev := fieldAfterLabel(html, "Developer/Publisher:"); dev != "" {
		return dev
	}
	return fieldAfterLabel(html, "Developer:")
}

// ExtractPublisher returns the publisher from a game detail page, falling
// back to the combined "Developer/Publisher" line.
func ExtractPublisher(html string) string {
	if pub := fieldAfterLabel(html, "Developer/Publisher:"); pub != "" {
		return pub
	}
	return fieldAfterLabel(html, "Publisher:")
}

// ExtractRating returns the site's user rating text from a game detail
// page, e.g. "4.12 / 5".
func ExtractRating(html string) string {
	return fieldAfterLabel(html, "Rating:")
}

// ExtractESRBCode returns the raw ESRB short code from a game detail page,
// e.g. "e10". Mapping codes to canonical categories is the domain layer's
// concern.
func ExtractESRBCode(html string) string {
	return fieldAfterLabel(html, "ESRB:")
}

// ExtractFranchise returns the franchise name from a game detail page.
func ExtractFranchise(html string) string {
	return fieldAfterLabel(html, "Franchise:")
}

// ExtractLocalPlayers returns the raw local player-count text from a game
// data page, e.g. "1-2 Players".
func ExtractLocalPlayers(html string) string {
	return fieldAfterLabel(html, "Local Players:")
}

// ExtractOnlinePlayers returns the raw online player-count text from a
// game data page.
func ExtractOnlinePlayers(html string) string {
	return fieldAfterLabel(html, "Online Players:")
}

// ExtractPlot returns the game description from the JSON-LD block the site
// embeds in its detail pages.
func ExtractPlot(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var plot string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload struct {
			Description string `json:"description"`
		}
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true
		}
		if payload.Description != "" {
			plot = payload.Description
			return false
		}
		return true
	})

	return plot
}

// fieldAfterLabel returns the text of the first info line carrying the
// given bold label. The site renders info lines as
// <li><b>Label:</b> value</li>, where the value may be a link. A label
// with no match yields an empty string.
func fieldAfterLabel(html, label string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var value string
	doc.Find("li b").EachWithBreak(func(_ int, b *goquery.Selection) bool {
		if strings.TrimSpace(b.Text()) != label {
			return true
		}
		li := b.Closest("li")
		if a := li.Find("a").First(); a.Length() > 0 {
			value = strings.TrimSpace(a.Text())
			return false
		}
		// Plain-text value: the line text minus the label itself.
		value = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(li.Text()), label))
		return false
	})

	return value
}
