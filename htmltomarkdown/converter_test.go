package htmltomarkdown_test

import (
	"testing"

	"github.com/garylea7/siteport"
	"github.com/garylea7/siteport/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>RAF Burtonwood opened in 1940.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "RAF Burtonwood opened in 1940.")
	})

	t.Run("converts headings and links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>History</h1><p>See <a href="hangar.html">the hangar</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# History")
		assert.Contains(t, md, "[the hangar](hangar.html)")
	})

	t.Run("converts images with alt text", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<img src="tower.jpg" alt="control tower">`)

		require.NoError(t, err)
		assert.Contains(t, md, "![control tower](tower.jpg)")
	})

	t.Run("empty input is EINVALID", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, siteport.EINVALID, siteport.ErrorCode(err))
	})
}
