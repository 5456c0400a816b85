package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/garylea7/siteport"
	"github.com/garylea7/siteport/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("reads a local file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<html>hi</html>"), 0644))

		f := fs.NewFetcher()
		t.Cleanup(func() { _ = f.Close() })

		html, err := f.Fetch(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "<html>hi</html>", html)
	})

	t.Run("missing file is EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		f := fs.NewFetcher()

		_, err := f.Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.html"))
		require.Error(t, err)
		assert.Equal(t, siteport.EUNAVAILABLE, siteport.ErrorCode(err))
	})
}

func TestListHTMLFiles(t *testing.T) {
	t.Parallel()

	t.Run("lists only .html files sorted by name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, name := range []string{"b.html", "a.html", "notes.txt", "c.HTML"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
		}
		require.NoError(t, os.Mkdir(filepath.Join(dir, "images"), 0755))

		files, err := fs.ListHTMLFiles(dir)
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(dir, "a.html"),
			filepath.Join(dir, "b.html"),
			filepath.Join(dir, "c.HTML"),
		}, files)
	})

	t.Run("missing directory is EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ListHTMLFiles(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Equal(t, siteport.EUNAVAILABLE, siteport.ErrorCode(err))
	})
}

func TestFallbackTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "burtonwoodhome897", fs.FallbackTitle("/site/burtonwoodhome897.html"))
	assert.Equal(t, "index", fs.FallbackTitle("index.html"))
	assert.Equal(t, "noext", fs.FallbackTitle("noext"))
}

func TestResolveImage(t *testing.T) {
	t.Parallel()

	page := filepath.Join("site", "pages", "history.html")

	assert.Equal(t, filepath.Join("site", "pages", "images", "a.jpg"), fs.ResolveImage(page, "images/a.jpg"))
	assert.Equal(t, filepath.Join("site", "logo.gif"), fs.ResolveImage(page, "../logo.gif"))
	assert.Empty(t, fs.ResolveImage(page, "https://cdn.example.com/a.jpg"))
	assert.Empty(t, fs.ResolveImage(page, "//cdn.example.com/a.jpg"))
	assert.Empty(t, fs.ResolveImage(page, ""))
}

func TestResolveImageIn(t *testing.T) {
	t.Parallel()

	root := filepath.Join("assets", "pictures")

	assert.Equal(t, filepath.Join("assets", "pictures", "images", "a.jpg"), fs.ResolveImageIn(root, "images/a.jpg"))
	assert.Empty(t, fs.ResolveImageIn(root, "https://cdn.example.com/a.jpg"))
	assert.Empty(t, fs.ResolveImageIn(root, "//cdn.example.com/a.jpg"))
	assert.Empty(t, fs.ResolveImageIn(root, ""))
}

func TestMimeType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/jpeg", fs.MimeType("a.JPG"))
	assert.Equal(t, "image/gif", fs.MimeType("banner.gif"))
	assert.Equal(t, "image/png", fs.MimeType("x.png"))
	assert.Equal(t, "application/octet-stream", fs.MimeType("weird.tiff"))
}
