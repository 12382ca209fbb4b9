package main

import (
	"fmt"

	"github.com/fwojciec/trendspot"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return trendspot.Errorf(trendspot.EINVALID, "use --force to confirm deletion")
	}

	searches, err := deps.History.FindSearches(deps.Ctx, trendspot.SearchFilter{Subject: &c.City})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendspot.ErrorMessage(err))
		return err
	}

	if len(searches) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no stored searches for %q. Use 'trendspot history' to see stored runs.\n", c.City)
		return trendspot.Errorf(trendspot.ENOTFOUND, "no stored searches for %q", c.City)
	}

	if err := deps.History.DeleteSearchesBySubject(deps.Ctx, c.City); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendspot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d stored search(es) for %q\n", len(searches), c.City)
	return nil
}
