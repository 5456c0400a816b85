package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/garylea7/siteport"
)

// Ensure LoggingRecordService implements siteport.ImportRecordService.
var _ siteport.ImportRecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps an ImportRecordService with debug logging
// for ledger commits and lookups.
type LoggingRecordService struct {
	next   siteport.ImportRecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next siteport.ImportRecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord logs the ledger commit and delegates.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, record *siteport.ImportRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("ledger commit",
			"sourceUrl", record.SourceURL,
			"remotePageId", record.RemotePageID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, record)
}

// FindRecordBySourceURL logs the lookup outcome and delegates.
func (s *LoggingRecordService) FindRecordBySourceURL(ctx context.Context, sourceURL string) (*siteport.ImportRecord, error) {
	record, err := s.next.FindRecordBySourceURL(ctx, sourceURL)
	s.logger.Debug("ledger lookup",
		"sourceUrl", sourceURL,
		"imported", err == nil,
	)
	return record, err
}

// FindRecords delegates to the wrapped service.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter siteport.ImportRecordFilter) ([]*siteport.ImportRecord, error) {
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecord logs the removal and delegates.
func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func() {
		s.logger.Info("ledger delete", "id", id, "err", err)
	}()
	return s.next.DeleteRecord(ctx, id)
}
