package goquery_test

import (
	"testing"

	"github.com/garylea7/siteport"
	"github.com/garylea7/siteport/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locateOnlyImage(t *testing.T, html string) siteport.ImageLocation {
	t.Helper()
	doc := parseDoc(t, html)
	img := doc.Find("img")
	require.Equal(t, 1, img.Length())
	return goquery.LocateImage(img)
}

func TestLocateImage(t *testing.T) {
	t.Parallel()

	t.Run("first row is header", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table>
			<tr><td><img src="banner.jpg"></td></tr>
			<tr><td>middle</td></tr>
			<tr><td>bottom</td></tr>
		</table></body></html>`

		assert.Equal(t, siteport.LocationHeader, locateOnlyImage(t, html))
	})

	t.Run("single-row table reads as header not footer", func(t *testing.T) {
		t.Parallel()

		// The first-row check precedes the last-row check, so a one-row
		// table ties toward header.
		html := `<html><body><table><tr><td><img src="only.jpg"></td></tr></table></body></html>`

		assert.Equal(t, siteport.LocationHeader, locateOnlyImage(t, html))
	})

	t.Run("last row is footer", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table>
			<tr><td>top</td></tr>
			<tr><td>middle</td></tr>
			<tr><td><img src="footer.gif"></td></tr>
		</table></body></html>`

		assert.Equal(t, siteport.LocationFooter, locateOnlyImage(t, html))
	})

	t.Run("first cell of a middle row is left sidebar", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table>
			<tr><td>top</td></tr>
			<tr><td><img src="nav.gif"></td><td>text</td><td>more</td></tr>
			<tr><td>bottom</td></tr>
		</table></body></html>`

		assert.Equal(t, siteport.LocationLeftSidebar, locateOnlyImage(t, html))
	})

	t.Run("last cell of a middle row is right sidebar", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table>
			<tr><td>top</td></tr>
			<tr><td>text</td><td>more</td><td><img src="ad.gif"></td></tr>
			<tr><td>bottom</td></tr>
		</table></body></html>`

		assert.Equal(t, siteport.LocationRightSidebar, locateOnlyImage(t, html))
	})

	t.Run("middle cell of a middle row is main content", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table>
			<tr><td>top</td></tr>
			<tr><td>left</td><td><img src="photo.jpg"></td><td>right</td></tr>
			<tr><td>bottom</td></tr>
		</table></body></html>`

		assert.Equal(t, siteport.LocationMainContent, locateOnlyImage(t, html))
	})

	t.Run("image outside any cell is unknown", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><img src="free.png"></div></body></html>`

		assert.Equal(t, siteport.LocationUnknown, locateOnlyImage(t, html))
	})

	t.Run("image nested below the cell is still located", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table>
			<tr><td><div><a href="x.html"><img src="deep.jpg"></a></div></td></tr>
			<tr><td>bottom</td></tr>
		</table></body></html>`

		assert.Equal(t, siteport.LocationHeader, locateOnlyImage(t, html))
	})
}
