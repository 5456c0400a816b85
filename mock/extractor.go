package mock

import (
	"github.com/garylea7/siteport"
)

var _ siteport.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of siteport.Extractor.
type Extractor struct {
	ExtractFn func(html string, fallbackTitle string) (*siteport.ExtractionResult, error)
}

func (e *Extractor) Extract(html string, fallbackTitle string) (*siteport.ExtractionResult, error) {
	return e.ExtractFn(html, fallbackTitle)
}

var _ siteport.LinkScanner = (*LinkScanner)(nil)

// LinkScanner is a mock implementation of siteport.LinkScanner.
type LinkScanner struct {
	ScanLinksFn func(html string, baseURL string) ([]siteport.PageLink, error)
}

func (s *LinkScanner) ScanLinks(html string, baseURL string) ([]siteport.PageLink, error) {
	return s.ScanLinksFn(html, baseURL)
}
