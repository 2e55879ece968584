// Package http provides the net/http implementation of gamefaqs.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chrisism/gamefaqs"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request. The site rejects requests
// carrying Go's default agent string.
const DefaultUserAgent = "Mozilla/5.0 (compatible; gamefaqs-scraper)"

// Ensure Fetcher implements gamefaqs.Fetcher at compile time.
var _ gamefaqs.Fetcher = (*Fetcher)(nil)

// Fetcher performs HTTP exchanges using net/http. A non-2xx response is
// not an error at this layer; the status code is returned for the scraping
// core to interpret.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Get retrieves the page at url and returns its body and HTTP status.
func (f *Fetcher) Get(ctx context.Context, url string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	return f.do(req)
}

// Post submits form values to url and returns the response body and HTTP
// status.
func (f *Fetcher) Post(ctx context.Context, url string, form url.Values) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return f.do(req)
}

func (f *Fetcher) do(req *http.Request) (string, int, error) {
	resp, err := f.client.Do(req)
	if err != nil {
		return "", 0, gamefaqs.Errorf(gamefaqs.ETRANSPORT, "request to %s failed: %v", req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, gamefaqs.Errorf(gamefaqs.ETRANSPORT, "reading response from %s failed: %v", req.URL, err)
	}

	return string(body), resp.StatusCode, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
