package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/trendspot"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := trendspot.SearchFilter{Limit: c.Limit}
	if c.City != "" {
		filter.Subject = &c.City
	}

	searches, err := deps.History.FindSearches(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendspot.ErrorMessage(err))
		return err
	}

	if len(searches) == 0 {
		fmt.Fprintln(deps.Stdout, "No stored searches found. Use 'trendspot trends' to run one.")
		return nil
	}

	for _, search := range searches {
		source := "live"
		if search.Fallback {
			source = "placeholder"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %d results  %s  %s\n",
			search.ID, search.Subject, len(search.Results),
			search.SearchedAt.Format(time.RFC3339), source)

		if c.Full {
			fmt.Fprint(deps.Stdout, trendspot.FormatResults(search.Results))
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
