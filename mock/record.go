package mock

import (
	"context"

	"github.com/garylea7/siteport"
)

var _ siteport.ImportRecordService = (*ImportRecordService)(nil)

// ImportRecordService is a mock implementation of siteport.ImportRecordService.
type ImportRecordService struct {
	CreateRecordFn          func(ctx context.Context, record *siteport.ImportRecord) error
	FindRecordBySourceURLFn func(ctx context.Context, sourceURL string) (*siteport.ImportRecord, error)
	FindRecordsFn           func(ctx context.Context, filter siteport.ImportRecordFilter) ([]*siteport.ImportRecord, error)
	DeleteRecordFn          func(ctx context.Context, id string) error
}

func (s *ImportRecordService) CreateRecord(ctx context.Context, record *siteport.ImportRecord) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *ImportRecordService) FindRecordBySourceURL(ctx context.Context, sourceURL string) (*siteport.ImportRecord, error) {
	return s.FindRecordBySourceURLFn(ctx, sourceURL)
}

func (s *ImportRecordService) FindRecords(ctx context.Context, filter siteport.ImportRecordFilter) ([]*siteport.ImportRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *ImportRecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
