package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chrisism/gamefaqs"
)

// ImageBlock is one titled segment of the images listing page, e.g.
// "Game Box Shots" or "GameFAQs Reader Screenshots".
type ImageBlock struct {
	Title   string
	Entries []ImageEntry
}

// ImageEntry is one thumbnail on the listing page.
type ImageEntry struct {
	// DetailPath is the site-relative link to the image detail page.
	DetailPath string

	// ThumbURL is the thumbnail image URL.
	ThumbURL string

	// Alt is the thumbnail alt text, empty when the site omits it.
	Alt string
}

// FullImage is one full-resolution image candidate found on an image
// detail page.
type FullImage struct {
	URL string
	Alt string
}

// ParseImageBlocks segments an images listing page into titled blocks and
// captures each thumbnail entry. Blocks without a title or without entries
// are kept as parsed; classification and filtering happen in the domain
// layer.
func ParseImageBlocks(html string) ([]ImageBlock, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, gamefaqs.Errorf(gamefaqs.EINVALID, "failed to parse images page: %v", err)
	}

	var blocks []ImageBlock
	doc.Find("div.head h2.title").Each(func(_ int, h2 *goquery.Selection) {
		block := ImageBlock{Title: strings.TrimSpace(h2.Text())}

		// The block body is the div.body sibling following the div.head
		// that carries the title.
		body := h2.Closest("div.head").Next()
		if !body.HasClass("body") {
			blocks = append(blocks, block)
			return
		}

		body.Find("a").Each(func(_ int, a *goquery.Selection) {
			img := a.Find("img").First()
			if img.Length() == 0 {
				return
			}
			href, ok := a.Attr("href")
			if !ok || href == "" {
				return
			}
			entry := ImageEntry{DetailPath: href}
			entry.ThumbURL, _ = img.Attr("src")
			entry.Alt, _ = img.Attr("alt")
			block.Entries = append(block.Entries, entry)
		})

		blocks = append(blocks, block)
	})

	return blocks, nil
}

// ParseFullImages collects the full-resolution image candidates of an image
// detail page: img elements carrying explicit data-img, data-img-width and
// data-img-height attributes. Document order is preserved.
func ParseFullImages(html string) ([]FullImage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, gamefaqs.Errorf(gamefaqs.EINVALID, "failed to parse image detail page: %v", err)
	}

	var images []FullImage
	doc.Find("img[data-img][data-img-width][data-img-height]").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("data-img")
		if !ok || src == "" {
			return
		}
		alt, _ := img.Attr("alt")
		images = append(images, FullImage{URL: src, Alt: alt})
	})

	return images, nil
}
