// Package goquery implements content extraction for legacy table-layout
// HTML pages. The main content region is located with a fallback chain of
// structural heuristics: the first table cell with substantial text or an
// image wins, else the <body> element, else the whole document.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/garylea7/siteport"
	"golang.org/x/net/html"
)

// Ensure Extractor implements siteport.Extractor at compile time.
var _ siteport.Extractor = (*Extractor)(nil)

// Extractor extracts the main content region and structural metadata
// from table-layout HTML. It is stateless and safe for concurrent use.
type Extractor struct {
	cfg siteport.ExtractConfig
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConfig overrides the default extraction thresholds.
func WithConfig(cfg siteport.ExtractConfig) Option {
	return func(e *Extractor) {
		e.cfg = cfg
	}
}

// NewExtractor creates an Extractor with the default thresholds.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{cfg: siteport.DefaultExtractConfig()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the extracted content and
// structural metadata. Malformed markup is parsed permissively and never
// fails extraction; the result may have empty fields for near-empty
// input.
func (e *Extractor) Extract(rawHTML string, fallbackTitle string) (*siteport.ExtractionResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, siteport.Errorf(siteport.EINVALID, "failed to parse HTML: %v", err)
	}

	main := e.MainContent(doc)

	// The cleaned fragment is produced from the selected cell's outermost
	// enclosing table span, matching the reference importer which carved
	// out the whole table before stripping table markup. A page whose
	// entire body is one layout table therefore cleans to an empty
	// string; that truncation is retained behavior, not a defect.
	region := main
	if len(main.Nodes) > 0 {
		if t := outermostAncestor(main.Nodes[0], "table"); t != nil {
			region = doc.FindNodes(t)
		}
	}

	contentHTML, err := goquery.OuterHtml(region)
	if err != nil {
		return nil, siteport.Errorf(siteport.EINTERNAL, "failed to serialize content: %v", err)
	}

	result := &siteport.ExtractionResult{
		Title:           Title(doc, fallbackTitle),
		MainContentHTML: siteport.StripTables(contentHTML),
	}

	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		result.Tables = append(result.Tables, e.AnalyzeTable(sel))
	})

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		alt, _ := sel.Attr("alt")
		result.Images = append(result.Images, siteport.ImageRef{
			SourcePath: src,
			AltText:    alt,
			Location:   LocateImage(sel),
		})
	})

	return result, nil
}

// Title returns the text of the document's first <title> element, or the
// fallback if the document has none. Always returns a string, possibly
// empty.
func Title(doc *goquery.Document, fallback string) string {
	title := doc.Find("title").First()
	if title.Length() == 0 {
		return fallback
	}
	return strings.TrimSpace(title.Text())
}

// MainContent locates the main content region. The scan is a greedy
// first-match over table cells in document order: the first cell whose
// stripped text exceeds the configured minimum length, or which contains
// an image, is selected. When no cell qualifies the <body> element is
// returned, or the whole document when there is no <body>.
//
// The first qualifying cell wins even if a later cell would be a better
// match; this is deliberate first-match compatibility with the reference
// importer, not a scored ranking. Given the same parsed tree the same
// node is always returned.
func (e *Extractor) MainContent(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection

	doc.Find("table td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if len(strippedText(cell)) > e.cfg.MainContentMinTextLength || cell.Find("img").Length() > 0 {
			found = cell
			return false
		}
		return true
	})
	if found != nil {
		return found
	}

	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// strippedText concatenates the trimmed text nodes under the selection,
// mirroring the reference importer's whitespace-stripped text extraction.
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		var walk func(*html.Node)
		walk = func(n *html.Node) {
			if n.Type == html.TextNode {
				b.WriteString(strings.TrimSpace(n.Data))
				return
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(node)
	}
	return b.String()
}
