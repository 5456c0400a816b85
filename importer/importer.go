// Package importer orchestrates page imports. It coordinates link
// scanning, fetching, extraction, media upload, and page creation
// against the host CMS, and commits the import ledger as pages land.
package importer

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/garylea7/siteport"
	"github.com/garylea7/siteport/bloom"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of an import operation.
type Result struct {
	Created  int
	Skipped  int
	Failed   int
	Failures []string
}

// ProgressEvent reports progress during an import operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

// MediaFetchFunc downloads an image's raw bytes and reports its MIME
// type. Used by the site importer to mirror remote images onto the
// host CMS.
type MediaFetchFunc func(ctx context.Context, url string) (data []byte, mimeType string, err error)

// Bloom filter sizing for in-run URL deduplication.
const (
	dedupExpectedURLs      = 10000
	dedupFalsePositiveRate = 0.01
)

// SiteImporter imports pages discovered by scanning a site's index page
// for links to .html pages. The scan preserves duplicate links; each
// target is imported at most once per run, and the ledger keeps it from
// being imported again across runs.
type SiteImporter struct {
	Fetcher     siteport.Fetcher
	Scanner     siteport.LinkScanner
	Extractor   siteport.Extractor
	Records     siteport.ImportRecordService
	Pages       siteport.PageCreator
	Media       siteport.MediaUploader
	FetchMedia  MediaFetchFunc
	RateLimiter siteport.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Status      string
	DryRun      bool
}

// itemResult holds the outcome of processing a single link.
type itemResult struct {
	url     string
	skipped bool
	err     error
}

// ImportSite scans indexURL for .html links and imports each target
// page. The batch continues past per-item failures; the returned Result
// aggregates counts and failure messages. The progress callback, if
// provided, receives events as the import proceeds.
func (s *SiteImporter) ImportSite(ctx context.Context, indexURL string, progress ProgressFunc) (*Result, error) {
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	indexHTML, err := FetchWithRetryDelays(ctx, indexURL, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch index %s: %w", indexURL, err)
	}

	links, err := s.Scanner.ScanLinks(indexHTML, indexURL)
	if err != nil {
		return nil, fmt.Errorf("scan links: %w", err)
	}

	// In-run dedup. The raw scan reports every anchor, duplicates
	// included; first occurrence wins.
	seen := bloom.NewFilter(dedupExpectedURLs, dedupFalsePositiveRate)
	var pending []siteport.PageLink
	for _, link := range links {
		if seen.Test(link.URL) {
			continue
		}
		seen.Add(link.URL)
		pending = append(pending, link)
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan itemResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, link := range pending {
			link := link
			g.Go(func() error {
				resultCh <- s.processLink(gctx, link, delays)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{}
	for item := range resultCh {
		completed.Add(1)
		switch {
		case item.err != nil:
			result.Failed++
			result.Failures = append(result.Failures, fmt.Sprintf("%s: %v", item.url, item.err))
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       item.url,
					Error:     item.err,
				})
			}
		case item.skipped:
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       item.url,
				})
			}
		default:
			result.Created++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       item.url,
				})
			}
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

// processLink imports a single discovered link: ledger check, fetch,
// extract, media upload, page creation, ledger commit.
func (s *SiteImporter) processLink(ctx context.Context, link siteport.PageLink, delays []time.Duration) itemResult {
	r := itemResult{url: link.URL}

	// Cross-run dedup: the ledger is checked before any fetch and
	// committed only after the page exists remotely.
	if _, err := s.Records.FindRecordBySourceURL(ctx, link.URL); err == nil {
		r.skipped = true
		return r
	} else if siteport.ErrorCode(err) != siteport.ENOTFOUND {
		r.err = err
		return r
	}

	if s.RateLimiter != nil {
		u, err := url.Parse(link.URL)
		if err != nil {
			r.err = fmt.Errorf("invalid url: %w", err)
			return r
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			r.err = err
			return r
		}
	}

	html, err := FetchWithRetryDelays(ctx, link.URL, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		r.err = err
		return r
	}

	extracted, err := s.Extractor.Extract(html, link.Title)
	if err != nil {
		r.err = err
		return r
	}

	content := extracted.MainContentHTML
	if s.Media != nil && s.FetchMedia != nil {
		content = s.uploadImages(ctx, link.URL, extracted, content)
	}

	if s.DryRun {
		return r
	}

	page, err := s.Pages.CreatePage(ctx, &siteport.PageDraft{
		Title:   extracted.Title,
		Content: content,
		Status:  s.pageStatus(),
	})
	if err != nil {
		r.err = err
		return r
	}

	record := &siteport.ImportRecord{
		SourceURL:    link.URL,
		Title:        extracted.Title,
		RemotePageID: page.ID,
		RemoteStatus: page.Status,
		ContentHash:  HashContent(content),
	}
	if err := s.Records.CreateRecord(ctx, record); err != nil && siteport.ErrorCode(err) != siteport.ECONFLICT {
		r.err = err
	}
	return r
}

// uploadImages mirrors the content images onto the host CMS and
// rewrites their src attributes to the attachment URLs. Upload failures
// leave the original src in place; the page is still imported.
func (s *SiteImporter) uploadImages(ctx context.Context, pageURL string, extracted *siteport.ExtractionResult, content string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return content
	}

	for _, img := range extracted.Images {
		if img.SourcePath == "" || !strings.Contains(content, img.SourcePath) {
			continue
		}
		ref, err := url.Parse(img.SourcePath)
		if err != nil {
			continue
		}
		abs := base.ResolveReference(ref).String()

		data, mimeType, err := s.FetchMedia(ctx, abs)
		if err != nil {
			continue
		}
		media, err := s.Media.UploadMedia(ctx, &siteport.MediaUpload{
			Filename: path.Base(ref.Path),
			MimeType: mimeType,
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

func (s *SiteImporter) pageStatus() string {
	if s.Status == "" {
		return "draft"
	}
	return s.Status
}

// rewriteSrc replaces a src attribute value in serialized HTML. The
// extractor renders attributes double-quoted, so a plain string
// replacement is exact.
func rewriteSrc(content, oldSrc, newURL string) string {
	return strings.ReplaceAll(content, `src="`+oldSrc+`"`, `src="`+newURL+`"`)
}

// HashContent computes an xxhash hex digest of content. Stored with
// each ledger record so an unchanged source page can be recognized on a
// later scan; this is the only format the content_hash column carries.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%016x", h)
}
