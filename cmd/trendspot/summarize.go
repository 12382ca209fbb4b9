package main

import (
	"fmt"

	"github.com/fwojciec/trendspot"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	analyzer := *deps.Analyzer
	analyzer.MaxResults = c.MaxResults
	analyzer.NoFallback = c.NoFallback

	report, err := analyzer.Analyze(deps.Ctx, c.City)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendspot.ErrorMessage(err))
		return err
	}

	if report.Fallback {
		fmt.Fprintf(deps.Stdout, "note: live search unavailable, summarizing placeholder data\n\n")
	}

	// Chunks are printed as they arrive from the model.
	err = deps.Summarizer.Summarize(deps.Ctx, report.Subject, trendspot.Snippets(report.Results), func(chunk string) error {
		_, err := fmt.Fprint(deps.Stdout, chunk)
		return err
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendspot.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout)
	return nil
}
