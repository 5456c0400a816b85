package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/garylea7/siteport"
	"github.com/garylea7/siteport/fs"
)

// Exporter writes the extracted content of local .html pages as
// markdown files instead of importing them into a CMS.
type Exporter struct {
	Fetcher   siteport.Fetcher
	Extractor siteport.Extractor
	Converter siteport.Converter
	Writer    *fs.Writer
}

// ExportDir extracts and converts every .html file directly under dir,
// writing one markdown file per page. The batch continues past per-item
// failures.
func (e *Exporter) ExportDir(ctx context.Context, dir string, progress ProgressFunc) (*Result, error) {
	files, err := fs.ListHTMLFiles(dir)
	if err != nil {
		return nil, err
	}

	total := len(files)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	result := &Result{}
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := e.exportFile(ctx, file); err != nil {
			result.Failed++
			result.Failures = append(result.Failures, fmt.Sprintf("%s: %v", file, err))
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					URL:       file,
					Error:     err,
				})
			}
			continue
		}

		result.Created++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     total,
				URL:       file,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return result, nil
}

func (e *Exporter) exportFile(ctx context.Context, path string) error {
	html, err := e.Fetcher.Fetch(ctx, path)
	if err != nil {
		return err
	}

	extracted, err := e.Extractor.Extract(html, fs.FallbackTitle(path))
	if err != nil {
		return err
	}

	// A page whose whole body is one layout table cleans to an empty
	// fragment. That page still gets its frontmatter file, with an
	// empty body; the converter only sees fragments with content.
	var markdown string
	if strings.TrimSpace(extracted.MainContentHTML) != "" {
		markdown, err = e.Converter.Convert(extracted.MainContentHTML)
		if err != nil {
			return err
		}
	}

	return e.Writer.WritePage(&fs.ExportPage{
		Source:  path,
		Title:   extracted.Title,
		Content: markdown,
	})
}
