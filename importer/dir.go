package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/garylea7/siteport"
	"github.com/garylea7/siteport/fs"
)

// DirImporter imports pages from a directory of local .html files.
// Page titles fall back to the file name when a page has no <title>;
// images referenced by relative paths are uploaded from disk and their
// src attributes rewritten to the attachment URLs.
type DirImporter struct {
	Fetcher   siteport.Fetcher
	Extractor siteport.Extractor
	Pages     siteport.PageCreator
	Media     siteport.MediaUploader
	Status    string
	DryRun    bool

	// ImagesDir, when set, resolves image paths against this directory
	// instead of each page's own.
	ImagesDir string
}

// ImportDir imports every .html file directly under dir, in name order.
// The batch continues past per-item failures.
func (d *DirImporter) ImportDir(ctx context.Context, dir string, progress ProgressFunc) (*Result, error) {
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

		if err := d.importFile(ctx, file); err != nil {
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

func (d *DirImporter) importFile(ctx context.Context, path string) error {
	html, err := d.Fetcher.Fetch(ctx, path)
	if err != nil {
		return err
	}

	extracted, err := d.Extractor.Extract(html, fs.FallbackTitle(path))
	if err != nil {
		return err
	}

	content := extracted.MainContentHTML
	if d.Media != nil {
		content = d.uploadLocalImages(ctx, path, extracted, content)
	}

	if d.DryRun {
		return nil
	}

	status := d.Status
	if status == "" {
		status = "draft"
	}
	_, err = d.Pages.CreatePage(ctx, &siteport.PageDraft{
		Title:   extracted.Title,
		Content: content,
		Status:  status,
	})
	return err
}

// uploadLocalImages uploads the content images that resolve to local
// files and rewrites their src attributes. Missing files and failed
// uploads leave the original src in place.
func (d *DirImporter) uploadLocalImages(ctx context.Context, pagePath string, extracted *siteport.ExtractionResult, content string) string {
	for _, img := range extracted.Images {
		if img.SourcePath == "" || !strings.Contains(content, img.SourcePath) {
			continue
		}
		local := fs.ResolveImage(pagePath, img.SourcePath)
		if d.ImagesDir != "" {
			local = fs.ResolveImageIn(d.ImagesDir, img.SourcePath)
		}
		if local == "" {
			continue
		}
		data, err := os.ReadFile(local)
		if err != nil {
			continue
		}
		media, err := d.Media.UploadMedia(ctx, &siteport.MediaUpload{
			Filename: filepath.Base(local),
			MimeType: fs.MimeType(local),
			AltText:  img.AltText,
			Data:     data,
		})
		if err != nil {
			continue
		}
		content = rewriteSrc(content, img.SourcePath, media.SourceURL)
	}
	return content
}
