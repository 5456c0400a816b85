// Package fs provides filesystem-based implementations for directory
// imports: enumerating local .html files, fetching their contents, and
// resolving the local images they reference.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/garylea7/siteport"
)

// Ensure Fetcher implements siteport.Fetcher at compile time.
var _ siteport.Fetcher = (*Fetcher)(nil)

// Fetcher reads page HTML from local files. The "url" passed to Fetch is
// a filesystem path.
type Fetcher struct{}

// NewFetcher creates a file-reading Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the file at path. A read failure is EUNAVAILABLE, same as
// a failed network fetch: extraction is never attempted on it.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", siteport.Errorf(siteport.EUNAVAILABLE, "read %s: %v", path, err)
	}
	return string(data), nil
}

// Close is a no-op for the file fetcher.
func (f *Fetcher) Close() error {
	return nil
}

// ListHTMLFiles returns the .html files directly under dir, sorted by
// name. Subdirectories are not descended into; the legacy sites this
// tool targets keep their pages flat.
func ListHTMLFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, siteport.Errorf(siteport.EUNAVAILABLE, "read dir %s: %v", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".html") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// FallbackTitle derives a page title from a file path: the base name
// with its extension stripped.
func FallbackTitle(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ResolveImage maps an image src from a page to a local file path,
// relative to the directory of the page that referenced it. Absolute
// URLs (http:, https:, //) are not local and resolve to "".
func ResolveImage(pagePath, src string) string {
	lower := strings.ToLower(src)
	if strings.HasPrefix(lower, "http:") || strings.HasPrefix(lower, "https:") || strings.HasPrefix(src, "//") {
		return ""
	}
	if src == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(pagePath), filepath.FromSlash(src))
}

// ResolveImageIn maps an image src to a local file under root, for
// pages whose images live outside the page's own directory. The same
// non-local exclusions as ResolveImage apply.
func ResolveImageIn(root, src string) string {
	lower := strings.ToLower(src)
	if strings.HasPrefix(lower, "http:") || strings.HasPrefix(lower, "https:") || strings.HasPrefix(src, "//") {
		return ""
	}
	if src == "" {
		return ""
	}
	return filepath.Join(root, filepath.FromSlash(src))
}

// MimeType returns the media MIME type for an image file extension,
// defaulting to application/octet-stream.
func MimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
