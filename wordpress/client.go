// Package wordpress implements siteport.PageCreator and
// siteport.MediaUploader against the WordPress REST API (wp/v2), using
// Basic auth with an application password.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/garylea7/siteport"
)

// DefaultTimeout is the default timeout for API requests. Media uploads
// move file bytes, so this is more generous than a page fetch.
const DefaultTimeout = 30 * time.Second

// Compile-time interface verification.
var (
	_ siteport.PageCreator   = (*Client)(nil)
	_ siteport.MediaUploader = (*Client)(nil)
)

// Client talks to a WordPress install's REST API.
type Client struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used in tests).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.client = c
	}
}

// NewClient creates a Client for the WordPress install at baseURL,
// authenticating with the given username and application password.
func NewClient(baseURL, username, password string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultTimeout}
	}
	return c
}

// pageResponse is the subset of the pages endpoint response we use.
type pageResponse struct {
	ID     int64  `json:"id"`
	Link   string `json:"link"`
	Status string `json:"status"`
}

// mediaResponse is the subset of the media endpoint response we use.
type mediaResponse struct {
	ID        int64  `json:"id"`
	SourceURL string `json:"source_url"`
}

// apiError is the error envelope WordPress returns on failure.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatePage creates a page via POST /wp-json/wp/v2/pages. Pages are
// created as drafts unless the draft specifies another status.
func (c *Client) CreatePage(ctx context.Context, draft *siteport.PageDraft) (*siteport.CreatedPage, error) {
	status := draft.Status
	if status == "" {
		status = "draft"
	}

	payload, err := json.Marshal(map[string]string{
		"title":   draft.Title,
		"content": draft.Content,
		"status":  status,
	})
	if err != nil {
		return nil, siteport.Errorf(siteport.EINTERNAL, "encoding page payload: %v", err)
	}

	body, err := c.post(ctx, "/wp-json/wp/v2/pages", "application/json", "", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var resp pageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, siteport.Errorf(siteport.EINTERNAL, "decoding page response: %v", err)
	}

	return &siteport.CreatedPage{ID: resp.ID, Link: resp.Link, Status: resp.Status}, nil
}

// UploadMedia uploads a file via POST /wp-json/wp/v2/media and, when alt
// text is present, sets it with a follow-up update. The returned Media
// carries the final hosted URL for content rewriting.
func (c *Client) UploadMedia(ctx context.Context, upload *siteport.MediaUpload) (*siteport.Media, error) {
	if upload.Filename == "" {
		return nil, siteport.Errorf(siteport.EINVALID, "media upload filename required")
	}

	disposition := fmt.Sprintf("attachment; filename=%q", upload.Filename)
	body, err := c.post(ctx, "/wp-json/wp/v2/media", upload.MimeType, disposition, bytes.NewReader(upload.Data))
	if err != nil {
		return nil, err
	}

	var resp mediaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, siteport.Errorf(siteport.EINTERNAL, "decoding media response: %v", err)
	}

	if upload.AltText != "" {
		payload, err := json.Marshal(map[string]string{"alt_text": upload.AltText})
		if err != nil {
			return nil, siteport.Errorf(siteport.EINTERNAL, "encoding alt text payload: %v", err)
		}
		path := fmt.Sprintf("/wp-json/wp/v2/media/%d", resp.ID)
		if _, err := c.post(ctx, path, "application/json", "", bytes.NewReader(payload)); err != nil {
			return nil, err
		}
	}

	return &siteport.Media{ID: resp.ID, SourceURL: resp.SourceURL}, nil
}

// post issues an authenticated POST and returns the response body.
// Transport failures map to EUNAVAILABLE and API rejections to
// EINTERNAL; both are per-item conditions the importer reports without
// aborting its batch.
func (c *Client) post(ctx context.Context, path, contentType, disposition string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, siteport.Errorf(siteport.EINVALID, "creating request: %v", err)
	}
	req.SetBasicAuth(c.username, c.password)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if disposition != "" {
		req.Header.Set("Content-Disposition", disposition)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, siteport.Errorf(siteport.EUNAVAILABLE, "wordpress %s: %v", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, siteport.Errorf(siteport.EUNAVAILABLE, "wordpress %s: %v", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return nil, siteport.Errorf(siteport.EINTERNAL, "wordpress %s: HTTP %d: %s", path, resp.StatusCode, apiErr.Message)
		}
		return nil, siteport.Errorf(siteport.EINTERNAL, "wordpress %s: HTTP %d", path, resp.StatusCode)
	}

	return data, nil
}
