// Package readability provides an alternate siteport.Extractor backed by
// go-readability, for modern pages that do not use table layouts. The
// table-heuristic extractor in the goquery package remains the default;
// this one is opt-in per import.
package readability

import (
	"strings"

	"github.com/garylea7/siteport"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements siteport.Extractor at compile time.
var _ siteport.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// It produces no table or image-location metadata; that analysis is
// specific to table layouts.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The cleaned
// fragment is stripped of tables so both extractors honor the same
// output contract.
func (e *Extractor) Extract(rawHTML string, fallbackTitle string) (*siteport.ExtractionResult, error) {
	if rawHTML == "" {
		return &siteport.ExtractionResult{Title: fallbackTitle}, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, siteport.Errorf(siteport.EINVALID, "readability extraction: %v", err)
	}

	title := article.Title
	if title == "" {
		title = fallbackTitle
	}

	return &siteport.ExtractionResult{
		Title:           title,
		MainContentHTML: siteport.StripTables(article.Content),
	}, nil
}
