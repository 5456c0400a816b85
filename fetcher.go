package siteport

import "context"

// Fetcher retrieves raw HTML for a source page. Implementations cover
// HTTP fetching, browser-rendered fetching, and local file reads; the
// importer does not care which.
type Fetcher interface {
	// Fetch returns the page's HTML. A failure to produce bytes is an
	// EUNAVAILABLE error; extraction is never attempted on a failed
	// fetch. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
