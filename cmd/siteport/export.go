package main

import (
	"fmt"

	"github.com/garylea7/siteport/importer"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	progress := func(event importer.ProgressEvent) {
		switch event.Type {
		case importer.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d files\n", event.Total)
		case importer.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := deps.Exporter.ExportDir(deps.Ctx, c.Path, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error exporting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s (%d failed)\n", result.Created, c.Out, result.Failed)
	return nil
}
