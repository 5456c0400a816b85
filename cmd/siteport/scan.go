package main

import (
	"fmt"

	"github.com/garylea7/siteport"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	if c.Sitemap {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, nil)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siteport.ErrorMessage(err))
			return err
		}
		for _, u := range urls {
			fmt.Fprintf(deps.Stdout, "%s %s\n", c.importedMarker(deps, u), u)
		}
		if len(urls) == 0 {
			fmt.Fprintln(deps.Stdout, "No sitemap URLs found.")
		}
		return nil
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteport.ErrorMessage(err))
		return err
	}

	links, err := deps.Scanner.ScanLinks(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteport.ErrorMessage(err))
		return err
	}

	// The raw scan preserves duplicates; print each target once.
	printed := make(map[string]bool)
	for _, link := range links {
		if printed[link.URL] {
			continue
		}
		printed[link.URL] = true
		fmt.Fprintf(deps.Stdout, "%s %s  %s\n", c.importedMarker(deps, link.URL), link.URL, link.Title)
	}

	if len(printed) == 0 {
		fmt.Fprintln(deps.Stdout, "No .html links found.")
	}
	return nil
}

// importedMarker returns "*" when the URL is already in the ledger.
func (c *ScanCmd) importedMarker(deps *Dependencies, url string) string {
	if _, err := deps.Records.FindRecordBySourceURL(deps.Ctx, url); err == nil {
		return "*"
	}
	return " "
}
