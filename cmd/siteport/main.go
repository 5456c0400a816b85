package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/garylea7/siteport"
	"github.com/garylea7/siteport/fs"
	"github.com/garylea7/siteport/goquery"
	"github.com/garylea7/siteport/htmltomarkdown"
	sitehttp "github.com/garylea7/siteport/http"
	"github.com/garylea7/siteport/importer"
	"github.com/garylea7/siteport/readability"
	"github.com/garylea7/siteport/rod"
	siteslog "github.com/garylea7/siteport/slog"
	"github.com/garylea7/siteport/sqlite"
	"github.com/garylea7/siteport/wordpress"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Ledger database path. Set before calling Run().
	DBPath string

	// SQLite database backing the import ledger.
	DB *sqlite.DB

	// Ledger service for end-to-end testing.
	RecordService siteport.ImportRecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// WordPress credentials may live in a .env file next to the user.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("siteport"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siteport --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Open the import ledger
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEPORT_DB to use a different ledger path\n")
		return fmt.Errorf("failed to open ledger at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RecordService = sqlite.NewImportRecordService(m.DB)
	deps.DB = m.DB
	deps.Records = m.RecordService
	deps.Scanner = goquery.NewScanner()
	deps.Sitemaps = sitehttp.NewSitemapService(nil)

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Records = siteslog.NewLoggingRecordService(deps.Records, logger)
		deps.Sitemaps = siteslog.NewLoggingSitemapService(deps.Sitemaps, logger)
	}

	// Wire command-specific dependencies
	switch cmd {
	case "scan":
		deps.Fetcher = sitehttp.NewFetcher()

	case "import":
		var fetcher siteport.Fetcher
		if cli.Import.Browser {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = sitehttp.NewFetcher()
		}
		defer fetcher.Close()
		if logger != nil {
			fetcher = siteslog.NewLoggingFetcher(fetcher, logger)
		}

		imp := &importer.SiteImporter{
			Fetcher:     fetcher,
			Scanner:     deps.Scanner,
			Extractor:   goquery.NewExtractor(),
			Records:     deps.Records,
			RateLimiter: importer.NewDomainLimiter(cli.Import.Rate),
			Concurrency: cli.Import.Concurrency,
			Status:      cli.Import.Status,
			DryRun:      cli.Import.DryRun,
		}
		if !cli.Import.DryRun {
			client, err := wordpressClientFromEnv()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: set SITEPORT_WP_URL, SITEPORT_WP_USER and SITEPORT_WP_PASS (a .env file is loaded if present)")
				return err
			}
			imp.Pages = client
			if !cli.Import.SkipImages {
				imp.Media = client
				imp.FetchMedia = httpMediaFetcher(nil)
			}
		}
		deps.Importer = imp

	case "import-dir":
		var extractor siteport.Extractor = goquery.NewExtractor()
		if cli.ImportDir.Readability {
			extractor = readability.NewExtractor()
		}

		d := &importer.DirImporter{
			Fetcher:   fs.NewFetcher(),
			Extractor: extractor,
			Status:    cli.ImportDir.Status,
			DryRun:    cli.ImportDir.DryRun,
			ImagesDir: cli.ImportDir.ImagesDir,
		}
		if !cli.ImportDir.DryRun {
			client, err := wordpressClientFromEnv()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: set SITEPORT_WP_URL, SITEPORT_WP_USER and SITEPORT_WP_PASS (a .env file is loaded if present)")
				return err
			}
			d.Pages = client
			if !cli.ImportDir.SkipImages {
				d.Media = client
			}
		}
		deps.DirImporter = d

	case "export":
		deps.Exporter = &importer.Exporter{
			Fetcher:   fs.NewFetcher(),
			Extractor: goquery.NewExtractor(),
			Converter: htmltomarkdown.NewConverter(),
			Writer:    fs.NewWriter(cli.Export.Out),
		}
	}

	return kongCtx.Run(deps)
}

// wordpressClientFromEnv builds the WordPress client from environment
// credentials.
func wordpressClientFromEnv() (*wordpress.Client, error) {
	baseURL := os.Getenv("SITEPORT_WP_URL")
	username := os.Getenv("SITEPORT_WP_USER")
	password := os.Getenv("SITEPORT_WP_PASS")
	if baseURL == "" || username == "" || password == "" {
		return nil, fmt.Errorf("SITEPORT_WP_URL, SITEPORT_WP_USER and SITEPORT_WP_PASS must be set")
	}
	return wordpress.NewClient(baseURL, username, password), nil
}

// httpMediaFetcher downloads image bytes over HTTP for mirroring onto
// the host CMS.
func httpMediaFetcher(client *nethttp.Client) importer.MediaFetchFunc {
	if client == nil {
		client = nethttp.DefaultClient
	}
	return func(ctx context.Context, url string) ([]byte, string, error) {
		req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
		if err != nil {
			return nil, "", err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, "", siteport.Errorf(siteport.EUNAVAILABLE, "fetch image %s: %v", url, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != nethttp.StatusOK {
			return nil, "", siteport.Errorf(siteport.EUNAVAILABLE, "fetch image %s: status %d", url, resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, "", err
		}
		mimeType := resp.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		return data, mimeType, nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("SITEPORT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "siteport.db"
	}
	dir := filepath.Join(home, ".siteport")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "siteport.db")
}
