package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/garylea7/siteport"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ siteport.ImportRecordService = (*ImportRecordService)(nil)

// ImportRecordService implements siteport.ImportRecordService using SQLite.
type ImportRecordService struct {
	db *DB
}

// NewImportRecordService creates a new ImportRecordService.
func NewImportRecordService(db *DB) *ImportRecordService {
	return &ImportRecordService{db: db}
}

// CreateRecord commits an import record. The ledger is keyed by exact
// source URL; a second record for the same URL is an ECONFLICT.
func (s *ImportRecordService) CreateRecord(ctx context.Context, record *siteport.ImportRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	if record.ImportedAt.IsZero() {
		record.ImportedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO import_records (id, source_url, title, remote_page_id, remote_status, content_hash, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.SourceURL, record.Title, record.RemotePageID, record.RemoteStatus,
		record.ContentHash, record.ImportedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return siteport.Errorf(siteport.ECONFLICT, "source URL already imported: %s", record.SourceURL)
	}
	return err
}

// FindRecordBySourceURL looks up a record by exact source URL string match.
func (s *ImportRecordService) FindRecordBySourceURL(ctx context.Context, sourceURL string) (*siteport.ImportRecord, error) {
	var record siteport.ImportRecord
	var importedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, remote_page_id, remote_status, content_hash, imported_at
		FROM import_records
		WHERE source_url = ?
	`, sourceURL).Scan(&record.ID, &record.SourceURL, &record.Title, &record.RemotePageID,
		&record.RemoteStatus, &record.ContentHash, &importedAt)

	if err == sql.ErrNoRows {
		return nil, siteport.Errorf(siteport.ENOTFOUND, "import record not found")
	}
	if err != nil {
		return nil, err
	}

	record.ImportedAt, err = time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse imported_at: %w", err)
	}

	return &record, nil
}

// FindRecords retrieves records matching the filter, most recent first.
func (s *ImportRecordService) FindRecords(ctx context.Context, filter siteport.ImportRecordFilter) ([]*siteport.ImportRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, remote_page_id, remote_status, content_hash, imported_at FROM import_records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY imported_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*siteport.ImportRecord
	for rows.Next() {
		var record siteport.ImportRecord
		var importedAt string

		if err := rows.Scan(&record.ID, &record.SourceURL, &record.Title, &record.RemotePageID,
			&record.RemoteStatus, &record.ContentHash, &importedAt); err != nil {
			return nil, err
		}

		record.ImportedAt, err = time.Parse(time.RFC3339, importedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse imported_at: %w", err)
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record, allowing a re-import.
func (s *ImportRecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM import_records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return siteport.Errorf(siteport.ENOTFOUND, "import record not found")
	}

	return nil
}
