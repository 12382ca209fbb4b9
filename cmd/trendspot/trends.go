package main

import (
	"fmt"

	"github.com/fwojciec/trendspot"
)

// Run executes the trends command.
func (c *TrendsCmd) Run(deps *Dependencies) error {
	analyzer := *deps.Analyzer
	analyzer.TopN = c.Top
	analyzer.MaxResults = c.MaxResults
	analyzer.NoFallback = c.NoFallback
	analyzer.Concurrency = c.Concurrency

	reports, err := analyzer.AnalyzeAll(deps.Ctx, c.Cities)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendspot.ErrorMessage(err))
		return err
	}

	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}

		fmt.Fprintf(deps.Stdout, "Trend keywords for %s (%d results):\n\n", report.Subject, len(report.Results))
		if report.Fallback {
			fmt.Fprintf(deps.Stdout, "note: live search unavailable, showing placeholder data\n\n")
		}
		fmt.Fprint(deps.Stdout, trendspot.FormatBarChart(report.Keywords, c.Width))

		if c.Results {
			fmt.Fprintf(deps.Stdout, "\nSearch results for %s:\n\n", report.Subject)
			fmt.Fprint(deps.Stdout, trendspot.FormatResults(report.Results))
		}
	}

	return nil
}
