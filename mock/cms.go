package mock

import (
	"context"

	"github.com/garylea7/siteport"
)

var _ siteport.PageCreator = (*PageCreator)(nil)

// PageCreator is a mock implementation of siteport.PageCreator.
type PageCreator struct {
	CreatePageFn func(ctx context.Context, draft *siteport.PageDraft) (*siteport.CreatedPage, error)
}

func (c *PageCreator) CreatePage(ctx context.Context, draft *siteport.PageDraft) (*siteport.CreatedPage, error) {
	return c.CreatePageFn(ctx, draft)
}

var _ siteport.MediaUploader = (*MediaUploader)(nil)

// MediaUploader is a mock implementation of siteport.MediaUploader.
type MediaUploader struct {
	UploadMediaFn func(ctx context.Context, upload *siteport.MediaUpload) (*siteport.Media, error)
}

func (u *MediaUploader) UploadMedia(ctx context.Context, upload *siteport.MediaUpload) (*siteport.Media, error) {
	return u.UploadMediaFn(ctx, upload)
}
