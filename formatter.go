package siteport

import (
	"strconv"
	"strings"
)

// FormatRecords formats import records for display.
// Uses title if available, falls back to source URL.
// One record per line.
func FormatRecords(records []*ImportRecord) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, r := range records {
		header := r.Title
		if header == "" {
			header = r.SourceURL
		}
		line := header + " -> page " + strconv.FormatInt(r.RemotePageID, 10)
		if r.RemoteStatus != "" {
			line += " (" + r.RemoteStatus + ")"
		}
		if !r.ImportedAt.IsZero() {
			line += " imported " + r.ImportedAt.Format("2006-01-02")
		}
		parts = append(parts, line)
	}

	return strings.Join(parts, "\n")
}
