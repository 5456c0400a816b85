package main

import (
	"fmt"

	"github.com/garylea7/siteport/importer"
)

// Run executes the import-dir command.
func (c *ImportDirCmd) Run(deps *Dependencies) error {
	progress := func(event importer.ProgressEvent) {
		switch event.Type {
		case importer.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d files\n", event.Total)
		case importer.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := deps.DirImporter.ImportDir(deps.Ctx, c.Path, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error importing: %v\n", err)
		return err
	}

	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "Would import %d pages (%d failed)\n", result.Created, result.Failed)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Imported %d pages (%d failed)\n", result.Created, result.Failed)
	return nil
}
