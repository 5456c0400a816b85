package siteport

// ImageLocation identifies the layout region an image was found in,
// derived from its position within the page's table layout.
type ImageLocation string

// Layout regions recognized by the extractor.
const (
	LocationHeader       ImageLocation = "header"
	LocationFooter       ImageLocation = "footer"
	LocationLeftSidebar  ImageLocation = "left-sidebar"
	LocationRightSidebar ImageLocation = "right-sidebar"
	LocationMainContent  ImageLocation = "main-content"
	LocationUnknown      ImageLocation = "unknown"
)

// TableContentType classifies what role a <table> plays on the page.
type TableContentType string

// Table classifications.
const (
	TableUnknown TableContentType = "unknown"
	TableMenu    TableContentType = "menu"
	TableLayout  TableContentType = "layout"
)

// CellInfo summarizes a single table cell.
type CellInfo struct {
	HasImage    bool   `json:"hasImage"`
	HasLinks    bool   `json:"hasLinks"`
	TextContent string `json:"textContent"`
}

// TableShape is a derived summary of a <table> element.
type TableShape struct {
	RowCount    int              `json:"rowCount"`
	CellInfo    []CellInfo       `json:"cellInfo"`
	IsMenuLike  bool             `json:"isMenuLike"`
	HasImages   bool             `json:"hasImages"`
	ContentType TableContentType `json:"contentType"`
}

// ImageRef describes an image found on a page, with its source path and
// the layout region it appeared in.
type ImageRef struct {
	SourcePath string        `json:"sourcePath"`
	AltText    string        `json:"altText"`
	Location   ImageLocation `json:"location"`
}

// ExtractionResult holds the extracted content and structural metadata
// for a single page. All slices are in document order.
type ExtractionResult struct {
	// Title is the text of the first <title> element, or the
	// caller-supplied fallback when the page has none.
	Title string `json:"title"`

	// MainContentHTML is the cleaned main-content fragment. It never
	// contains a <table> element.
	MainContentHTML string `json:"mainContentHtml"`

	// Tables summarizes every <table> on the page.
	Tables []TableShape `json:"tables"`

	// Images lists every <img> on the page with its layout region.
	Images []ImageRef `json:"images"`
}

// PageLink is a link to an .html page discovered during a site scan.
type PageLink struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// ExtractConfig holds the extraction heuristic thresholds. The defaults
// were tuned against one sample site and have no derivation; they are
// exposed as configuration rather than baked in.
type ExtractConfig struct {
	// MenuTableRowCount and MenuTableCellCount identify a navigation
	// menu table: exactly MenuTableRowCount rows where the second row
	// has exactly MenuTableCellCount cells.
	MenuTableRowCount  int
	MenuTableCellCount int

	// LayoutTableMaxCellRows is the maximum cumulative cell-row count
	// for a table with images to be classified as a layout table.
	LayoutTableMaxCellRows int

	// MainContentMinTextLength is the minimum stripped text length for
	// a table cell to qualify as main content.
	MainContentMinTextLength int
}

// DefaultExtractConfig returns the extraction thresholds used by the
// reference site.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		MenuTableRowCount:        2,
		MenuTableCellCount:       12,
		LayoutTableMaxCellRows:   3,
		MainContentMinTextLength: 200,
	}
}

// Extractor extracts the main content region and structural metadata
// from a page's raw HTML.
//
// Extraction never fails on malformed markup: the HTML is parsed
// permissively and some result is always produced, even if near-empty.
// The fallbackTitle is used when the page has no <title> element
// (typically derived from the source filename with its extension
// stripped).
type Extractor interface {
	Extract(html string, fallbackTitle string) (*ExtractionResult, error)
}

// LinkScanner discovers links to .html pages in raw HTML.
type LinkScanner interface {
	// ScanLinks returns every anchor whose href contains the literal
	// substring ".html", in document order. Hrefs are resolved against
	// baseURL when it is non-empty. Duplicates are preserved; the
	// caller is responsible for deduplication against previously seen
	// targets.
	ScanLinks(html string, baseURL string) ([]PageLink, error)
}
