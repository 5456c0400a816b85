package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/garylea7/siteport"
)

// Ensure Scanner implements siteport.LinkScanner at compile time.
var _ siteport.LinkScanner = (*Scanner)(nil)

// Scanner discovers links to .html pages in raw HTML.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanLinks returns every anchor whose href contains the literal
// substring ".html", in document order. The substring match is exact:
// "foo.htm" does not qualify. Hrefs are resolved against baseURL when it
// is non-empty; duplicates are preserved for the caller to deduplicate
// against its import ledger.
func (s *Scanner) ScanLinks(rawHTML string, baseURL string) ([]siteport.PageLink, error) {
	var base *url.URL
	if baseURL != "" {
		var err error
		base, err = url.Parse(baseURL)
		if err != nil {
			return nil, siteport.Errorf(siteport.EINVALID, "invalid base URL: %v", err)
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, siteport.Errorf(siteport.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []siteport.PageLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, ".html") {
			return
		}

		resolved := href
		if base != nil {
			if ref, err := url.Parse(href); err == nil {
				resolved = base.ResolveReference(ref).String()
			}
		}

		links = append(links, siteport.PageLink{
			URL:   resolved,
			Title: strings.TrimSpace(sel.Text()),
		})
	})

	return links, nil
}
