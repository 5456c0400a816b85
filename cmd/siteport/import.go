package main

import (
	"fmt"

	"github.com/garylea7/siteport/importer"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	progress := func(event importer.ProgressEvent) {
		switch event.Type {
		case importer.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		case importer.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  skip %s (already imported)\n", event.URL)
		case importer.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := deps.Importer.ImportSite(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error importing: %v\n", err)
		return err
	}

	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "Would import %d pages (%d skipped, %d failed)\n",
			result.Created, result.Skipped, result.Failed)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Imported %d pages (%d skipped, %d failed)\n",
		result.Created, result.Skipped, result.Failed)
	return nil
}
