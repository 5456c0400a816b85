package siteport

// Converter converts HTML to Markdown. Used by the export command to
// turn extracted content fragments into portable markdown files.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a cleaned fragment (e.g., from an Extractor).
	Convert(html string) (string, error)
}
