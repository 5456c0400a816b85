// Package http provides HTTP-based implementations of siteport.Fetcher
// and siteport.SitemapService for static legacy sites.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/garylea7/siteport"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements siteport.Fetcher at compile time.
var _ siteport.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests. It does
// not execute JavaScript; legacy static sites do not need it. Use
// rod.Fetcher for the rare site behind a scripted redirect.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
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

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Any failure to
// produce bytes is reported as EUNAVAILABLE; extraction is never
// attempted by callers on a failed fetch.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", siteport.Errorf(siteport.EINVALID, "invalid fetch URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", siteport.Errorf(siteport.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", siteport.Errorf(siteport.EUNAVAILABLE, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", siteport.Errorf(siteport.EUNAVAILABLE, "fetch %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
