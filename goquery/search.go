// Package goquery implements the HTML extraction layer of the adapter.
// Every exported function is a pure pageBody -> values extractor so that a
// site layout drift invalidates a single extractor rather than the whole
// pipeline.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chrisism/gamefaqs"
)

// SearchRow is one parsed data row of the search results table.
type SearchRow struct {
	// PlatformLabel is the site's platform column value, e.g. "NES".
	PlatformLabel string

	// Path is the site-relative link to the game's detail page.
	Path string

	// Title is the game title as printed in the row.
	Title string

	// ReleaseYear is the release column value, empty when absent.
	ReleaseYear string
}

// ParseSearchResults extracts the data rows of a search results page.
// The header row (title cell "Game") is skipped. Rows missing a link or a
// title are ignored; a page with no recognizable rows parses to an empty
// slice, not an error.
func ParseSearchResults(html string) ([]SearchRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, gamefaqs.Errorf(gamefaqs.EINVALID, "failed to parse search page: %v", err)
	}

	var rows []SearchRow
	doc.Find("div.sr_cell.sr_title a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}
		title := strings.TrimSpace(a.Text())
		if title == "" || title == "Game" {
			return
		}

		cell := a.Closest("div.sr_title")
		row := SearchRow{Path: href, Title: title}
		if prev := cell.Prev(); prev.HasClass("sr_platform") {
			row.PlatformLabel = strings.TrimSpace(prev.Text())
		}
		if next := cell.Next(); next.HasClass("sr_release") {
			row.ReleaseYear = strings.TrimSpace(next.Text())
		}
		rows = append(rows, row)
	})

	return rows, nil
}
