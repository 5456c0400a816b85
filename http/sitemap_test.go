package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/garylea7/siteport"
	siteporthttp "github.com/garylea7/siteport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads urlset from robots.txt directive", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("User-agent: *\nSitemap: " + srv.URL + "/pages.xml\n"))
		})
		mux.HandleFunc("/pages.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<?xml version="1.0"?>
				<urlset>
					<url><loc>` + srv.URL + `/a.html</loc></url>
					<url><loc>` + srv.URL + `/b.html</loc></url>
				</urlset>`))
		})

		svc := siteporthttp.NewSitemapService(srv.Client())

		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{srv.URL + "/a.html", srv.URL + "/b.html"}, urls)
	})

	t.Run("falls back to sitemap.xml when robots has no directive", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset><url><loc>` + srv.URL + `/page.html</loc></url></urlset>`))
		})

		svc := siteporthttp.NewSitemapService(srv.Client())

		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{srv.URL + "/page.html"}, urls)
	})

	t.Run("resolves sitemap indexes recursively and deduplicates", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<sitemapindex>
				<sitemap><loc>` + srv.URL + `/one.xml</loc></sitemap>
				<sitemap><loc>` + srv.URL + `/two.xml</loc></sitemap>
			</sitemapindex>`))
		})
		mux.HandleFunc("/one.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset>
				<url><loc>` + srv.URL + `/a.html</loc></url>
				<url><loc>` + srv.URL + `/shared.html</loc></url>
			</urlset>`))
		})
		mux.HandleFunc("/two.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset>
				<url><loc>` + srv.URL + `/shared.html</loc></url>
				<url><loc>` + srv.URL + `/b.html</loc></url>
			</urlset>`))
		})

		svc := siteporthttp.NewSitemapService(srv.Client())

		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{
			srv.URL + "/a.html",
			srv.URL + "/shared.html",
			srv.URL + "/b.html",
		}, urls)
	})

	t.Run("applies the URL filter", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset>
				<url><loc>` + srv.URL + `/keep.html</loc></url>
				<url><loc>` + srv.URL + `/skip.pdf</loc></url>
			</urlset>`))
		})

		svc := siteporthttp.NewSitemapService(srv.Client())
		filter := &siteport.URLFilter{Include: []*regexp.Regexp{regexp.MustCompile(`\.html$`)}}

		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, filter)
		require.NoError(t, err)

		assert.Equal(t, []string{srv.URL + "/keep.html"}, urls)
	})

	t.Run("returns empty slice when site has no sitemap", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		t.Cleanup(srv.Close)

		svc := siteporthttp.NewSitemapService(srv.Client())

		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)

		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})
}
