package siteport

import (
	"context"
	"time"
)

// ImportRecord tracks a successfully imported source page. Records are
// keyed by exact source URL string match; the site-scan importer checks
// the ledger before importing and commits a record only after the remote
// page has been created.
type ImportRecord struct {
	ID           string    `json:"id"`
	SourceURL    string    `json:"sourceUrl"`
	Title        string    `json:"title"`
	RemotePageID int64     `json:"remotePageId"`
	RemoteStatus string    `json:"remoteStatus"`
	ContentHash  string    `json:"contentHash"`
	ImportedAt   time.Time `json:"importedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ImportRecord) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "import record source URL required")
	}
	return nil
}

// ImportRecordService is the "already imported" ledger consumed by the
// site-scan importer. The extractor never mutates the ledger; only the
// importer's commit step does, after successfully creating a page.
type ImportRecordService interface {
	// CreateRecord commits an import record.
	// Returns ECONFLICT if the source URL has already been recorded.
	CreateRecord(ctx context.Context, record *ImportRecord) error

	// FindRecordBySourceURL looks up a record by exact source URL.
	// Returns ENOTFOUND if the URL has never been imported.
	FindRecordBySourceURL(ctx context.Context, sourceURL string) (*ImportRecord, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter ImportRecordFilter) ([]*ImportRecord, error)

	// DeleteRecord removes a record, allowing the URL to be re-imported.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// ImportRecordFilter represents a filter for FindRecords.
type ImportRecordFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
