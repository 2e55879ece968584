package gamefaqs

import (
	"context"
	"net/url"
)

// Fetcher performs HTTP exchanges with the scraped site. It is the
// transport collaborator of the scraping core: a non-success status is a
// recoverable condition reported through the returned status code, not an
// error. The error return is reserved for transport-level failures
// (connection refused, timeout, canceled context).
type Fetcher interface {
	// Get retrieves the page at url and returns its body and HTTP status.
	Get(ctx context.Context, url string) (body string, status int, err error)

	// Post submits form values to url and returns the response body and
	// HTTP status.
	Post(ctx context.Context, url string, form url.Values) (body string, status int, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
