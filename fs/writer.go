package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/garylea7/siteport"
)

// ExportPage is a page destined for markdown export.
type ExportPage struct {
	Source  string // original file path or URL
	Title   string
	Content string // markdown
}

// Writer writes exported pages as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// FormatPage formats an exported page with YAML frontmatter.
func FormatPage(page *ExportPage) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.Source)
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title)
	b.WriteString("\nexported: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	return b.String()
}

// WritePage writes one page under the base directory. The file name is
// the source's base name with a .md extension.
func (w *Writer) WritePage(page *ExportPage) error {
	if page.Source == "" {
		return siteport.Errorf(siteport.EINVALID, "export page source required")
	}

	name := FallbackTitle(page.Source) + ".md"
	fullPath := filepath.Join(w.baseDir, name)

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(FormatPage(page)), 0644)
}
