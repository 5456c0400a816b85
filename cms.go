package siteport

import "context"

// PageDraft is the payload for creating a page on the host CMS.
type PageDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"` // "draft" unless overridden
}

// CreatedPage describes a page created on the host CMS.
type CreatedPage struct {
	ID     int64  `json:"id"`
	Link   string `json:"link"`
	Status string `json:"status"`
}

// MediaUpload is the payload for uploading an image attachment.
type MediaUpload struct {
	Filename string
	MimeType string
	AltText  string
	Data     []byte
}

// Media describes an uploaded attachment.
type Media struct {
	ID        int64  `json:"id"`
	SourceURL string `json:"sourceUrl"` // final hosted URL of the file
}

// PageCreator creates pages on the host CMS.
type PageCreator interface {
	// CreatePage creates a page and returns its remote identity.
	// Returns EUNAVAILABLE if the CMS could not be reached and
	// EINTERNAL if it rejected the request.
	CreatePage(ctx context.Context, draft *PageDraft) (*CreatedPage, error)
}

// MediaUploader uploads image attachments to the host CMS.
type MediaUploader interface {
	// UploadMedia uploads a file and returns its attachment identity,
	// including the final hosted URL to rewrite content references to.
	UploadMedia(ctx context.Context, upload *MediaUpload) (*Media, error)
}
