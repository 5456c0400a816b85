package main

import (
	"fmt"

	"github.com/garylea7/siteport"
)

// Run executes the forget command.
func (c *ForgetCmd) Run(deps *Dependencies) error {
	record, err := deps.Records.FindRecordBySourceURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteport.ErrorMessage(err))
		return err
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, record.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteport.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Forgot %s; it will be imported again on the next run\n", c.URL)
	return nil
}
