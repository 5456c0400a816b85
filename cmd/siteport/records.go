package main

import (
	"fmt"

	"github.com/garylea7/siteport"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	filter := siteport.ImportRecordFilter{}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteport.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No imported pages recorded.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, siteport.FormatRecords(records))
	return nil
}
