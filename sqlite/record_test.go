package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/garylea7/siteport"
	"github.com/garylea7/siteport/importer"
	"github.com/garylea7/siteport/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestImportRecordService_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("creates record with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewImportRecordService(db)
		ctx := context.Background()

		record := &siteport.ImportRecord{
			SourceURL:    "https://example.com/burtonwoodhome897.html",
			Title:        "Burtonwood Home",
			RemotePageID: 101,
			RemoteStatus: "draft",
		}

		err := svc.CreateRecord(ctx, record)
		require.NoError(t, err)

		assert.NotEmpty(t, record.ID, "ID should be generated")
		assert.False(t, record.ImportedAt.IsZero(), "ImportedAt should be set")
	})

	t.Run("returns error for invalid record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewImportRecordService(db)
		ctx := context.Background()

		err := svc.CreateRecord(ctx, &siteport.ImportRecord{}) // missing source URL
		require.Error(t, err)
		assert.Equal(t, siteport.EINVALID, siteport.ErrorCode(err))
	})

	t.Run("duplicate source URL is ECONFLICT", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewImportRecordService(db)
		ctx := context.Background()

		record := &siteport.ImportRecord{SourceURL: "https://example.com/a.html"}
		require.NoError(t, svc.CreateRecord(ctx, record))

		err := svc.CreateRecord(ctx, &siteport.ImportRecord{SourceURL: "https://example.com/a.html"})
		require.Error(t, err)
		assert.Equal(t, siteport.ECONFLICT, siteport.ErrorCode(err))
	})
}

func TestImportRecordService_FindRecordBySourceURL(t *testing.T) {
	t.Parallel()

	t.Run("returns record on exact URL match", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewImportRecordService(db)
		ctx := context.Background()

		record := &siteport.ImportRecord{
			SourceURL:    "https://example.com/hangar.html",
			Title:        "The Hangar",
			RemotePageID: 7,
			RemoteStatus: "draft",
			ContentHash:  importer.HashContent("<p>hangar</p>"),
		}
		require.NoError(t, svc.CreateRecord(ctx, record))

		found, err := svc.FindRecordBySourceURL(ctx, "https://example.com/hangar.html")
		require.NoError(t, err)
		assert.Equal(t, record.ID, found.ID)
		assert.Equal(t, "The Hangar", found.Title)
		assert.Equal(t, int64(7), found.RemotePageID)
		assert.Equal(t, record.ContentHash, found.ContentHash)
	})

	t.Run("match is exact, not normalized", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewImportRecordService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateRecord(ctx, &siteport.ImportRecord{
			SourceURL: "https://example.com/page.html",
		}))

		_, err := svc.FindRecordBySourceURL(ctx, "https://example.com/PAGE.html")
		require.Error(t, err)
		assert.Equal(t, siteport.ENOTFOUND, siteport.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unseen URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewImportRecordService(db)

		_, err := svc.FindRecordBySourceURL(context.Background(), "https://example.com/never.html")
		require.Error(t, err)
		assert.Equal(t, siteport.ENOTFOUND, siteport.ErrorCode(err))
	})
}

func TestImportRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewImportRecordService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateRecord(ctx, &siteport.ImportRecord{SourceURL: "https://example.com/a.html"}))
		require.NoError(t, svc.CreateRecord(ctx, &siteport.ImportRecord{SourceURL: "https://example.com/b.html"}))

		url := "https://example.com/b.html"
		records, err := svc.FindRecords(ctx, siteport.ImportRecordFilter{SourceURL: &url})
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, url, records[0].SourceURL)
	})

	t.Run("orders most recent first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewImportRecordService(db)
		ctx := context.Background()

		older := &siteport.ImportRecord{
			SourceURL:  "https://example.com/old.html",
			ImportedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		newer := &siteport.ImportRecord{
			SourceURL:  "https://example.com/new.html",
			ImportedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, svc.CreateRecord(ctx, older))
		require.NoError(t, svc.CreateRecord(ctx, newer))

		records, err := svc.FindRecords(ctx, siteport.ImportRecordFilter{})
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, "https://example.com/new.html", records[0].SourceURL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewImportRecordService(db)
		ctx := context.Background()

		for _, u := range []string{"a", "b", "c"} {
			require.NoError(t, svc.CreateRecord(ctx, &siteport.ImportRecord{
				SourceURL: "https://example.com/" + u + ".html",
			}))
		}

		records, err := svc.FindRecords(ctx, siteport.ImportRecordFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestImportRecordService_DeleteRecord(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewImportRecordService(db)
		ctx := context.Background()

		record := &siteport.ImportRecord{SourceURL: "https://example.com/gone.html"}
		require.NoError(t, svc.CreateRecord(ctx, record))

		require.NoError(t, svc.DeleteRecord(ctx, record.ID))

		_, err := svc.FindRecordBySourceURL(ctx, record.SourceURL)
		assert.Equal(t, siteport.ENOTFOUND, siteport.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewImportRecordService(db)

		err := svc.DeleteRecord(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, siteport.ENOTFOUND, siteport.ErrorCode(err))
	})
}
