package main

import (
	"context"
	"io"

	"github.com/garylea7/siteport"
	"github.com/garylea7/siteport/importer"
	"github.com/garylea7/siteport/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Records     siteport.ImportRecordService
	Scanner     siteport.LinkScanner
	Sitemaps    siteport.SitemapService
	Fetcher     siteport.Fetcher
	Importer    *importer.SiteImporter
	DirImporter *importer.DirImporter
	Exporter    *importer.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scan      ScanCmd      `cmd:"" help:"List pages discovered on a site and mark imported ones"`
	Import    ImportCmd    `cmd:"" help:"Import a site's pages into WordPress"`
	ImportDir ImportDirCmd `cmd:"" name:"import-dir" help:"Import a directory of .html files into WordPress"`
	Export    ExportCmd    `cmd:"" help:"Export a directory of .html files as markdown"`
	Records   RecordsCmd   `cmd:"" help:"List imported pages from the ledger"`
	Forget    ForgetCmd    `cmd:"" help:"Remove a URL from the ledger so it can be re-imported"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URL     string `arg:"" help:"Site index URL"`
	Sitemap bool   `help:"Discover pages via sitemap.xml instead of scanning index links"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	URL         string  `arg:"" help:"Site index URL"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64 `default:"1" help:"Max requests per second per domain"`
	Browser     bool    `help:"Fetch pages with a headless browser"`
	DryRun      bool    `help:"Report what would be imported without creating pages"`
	Status      string  `default:"draft" help:"Status for created pages"`
	SkipImages  bool    `help:"Do not mirror content images onto the CMS"`
}

// ImportDirCmd is the "import-dir" subcommand.
type ImportDirCmd struct {
	Path        string `arg:"" type:"existingdir" help:"Directory of .html files"`
	ImagesDir   string `name:"images-dir" help:"Resolve image paths against this directory instead of each page's own"`
	Readability bool   `help:"Use the readability extractor instead of the table-layout heuristic"`
	DryRun      bool   `help:"Report what would be imported without creating pages"`
	Status      string `default:"draft" help:"Status for created pages"`
	SkipImages  bool   `help:"Do not upload referenced local images"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Path string `arg:"" type:"existingdir" help:"Directory of .html files"`
	Out  string `arg:"" help:"Output directory for markdown files"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	URL string `help:"Filter by source URL"`
}

// ForgetCmd is the "forget" subcommand.
type ForgetCmd struct {
	URL string `arg:"" help:"Source URL to forget"`
}
