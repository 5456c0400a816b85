package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/garylea7/siteport"
	"github.com/garylea7/siteport/mock"
	siteslog "github.com/garylea7/siteport/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordService_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("logs ledger commit", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ImportRecordService{
			CreateRecordFn: func(ctx context.Context, record *siteport.ImportRecord) error {
				return nil
			},
		}

		svc := siteslog.NewLoggingRecordService(inner, logger)
		err := svc.CreateRecord(context.Background(), &siteport.ImportRecord{
			SourceURL:    "https://example.com/about.html",
			RemotePageID: 42,
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "ledger commit")
		assert.Contains(t, output, "sourceUrl=https://example.com/about.html")
		assert.Contains(t, output, "remotePageId=42")
	})

	t.Run("logs conflict error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ImportRecordService{
			CreateRecordFn: func(ctx context.Context, record *siteport.ImportRecord) error {
				return siteport.Errorf(siteport.ECONFLICT, "source URL already imported")
			},
		}

		svc := siteslog.NewLoggingRecordService(inner, logger)
		err := svc.CreateRecord(context.Background(), &siteport.ImportRecord{
			SourceURL: "https://example.com/about.html",
		})

		require.Error(t, err)
		assert.Equal(t, siteport.ECONFLICT, siteport.ErrorCode(err))
		assert.Contains(t, buf.String(), "already imported")
	})
}

func TestLoggingRecordService_FindRecordBySourceURL(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs lookup", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.ImportRecordService{
			FindRecordBySourceURLFn: func(ctx context.Context, sourceURL string) (*siteport.ImportRecord, error) {
				return &siteport.ImportRecord{ID: "rec1", SourceURL: sourceURL}, nil
			},
		}

		svc := siteslog.NewLoggingRecordService(inner, logger)
		record, err := svc.FindRecordBySourceURL(context.Background(), "https://example.com/about.html")

		require.NoError(t, err)
		assert.Equal(t, "rec1", record.ID)
		output := buf.String()
		assert.Contains(t, output, "ledger lookup")
		assert.Contains(t, output, "imported=true")
	})
}
