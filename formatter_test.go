package siteport_test

import (
	"testing"
	"time"

	"github.com/garylea7/siteport"
	"github.com/stretchr/testify/assert"
)

func TestFormatRecords(t *testing.T) {
	t.Parallel()

	t.Run("formats single record with title", func(t *testing.T) {
		t.Parallel()

		records := []*siteport.ImportRecord{
			{
				Title:        "Burtonwood Home",
				RemotePageID: 42,
				RemoteStatus: "draft",
				ImportedAt:   time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
			},
		}

		result := siteport.FormatRecords(records)

		assert.Equal(t, "Burtonwood Home -> page 42 (draft) imported 2025-03-14", result)
	})

	t.Run("uses source URL when title is empty", func(t *testing.T) {
		t.Parallel()

		records := []*siteport.ImportRecord{
			{SourceURL: "https://example.com/page.html", RemotePageID: 7},
		}

		result := siteport.FormatRecords(records)

		assert.Equal(t, "https://example.com/page.html -> page 7", result)
	})

	t.Run("formats multiple records on separate lines", func(t *testing.T) {
		t.Parallel()

		records := []*siteport.ImportRecord{
			{Title: "One", RemotePageID: 1},
			{Title: "Two", RemotePageID: 2},
		}

		result := siteport.FormatRecords(records)

		assert.Equal(t, "One -> page 1\nTwo -> page 2", result)
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, siteport.FormatRecords(nil))
	})
}
