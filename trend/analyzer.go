// Package trend provides travel trend analysis orchestration.
// It coordinates search retrieval, placeholder fallback, history
// persistence, and keyword extraction into a single report per subject.
package trend

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/trendspot"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of subjects analyzed in parallel by
// AnalyzeAll when Concurrency is not set.
const DefaultConcurrency = 4

// Report holds the outcome of analyzing one subject.
type Report struct {
	Subject    string                    `json:"subject"`
	Query      string                    `json:"query"`
	Results    []*trendspot.SearchResult `json:"results"`
	Keywords   []trendspot.KeywordCount  `json:"keywords"`
	Fallback   bool                      `json:"fallback"`
	SearchedAt time.Time                 `json:"searchedAt"`
}

// Analyzer orchestrates trend analysis for subjects.
type Analyzer struct {
	Searcher trendspot.Searcher

	// History, if set, records every analyzed search.
	History trendspot.SearchService

	// Stopwords used for keyword extraction.
	// Nil selects trendspot.DefaultStopwords.
	Stopwords trendspot.Stopwords

	// MaxResults caps retrieved results (trendspot.DefaultMaxResults if unset).
	MaxResults int

	// TopN caps extracted keywords (trendspot.DefaultTopKeywords if unset).
	TopN int

	// NoFallback disables the synthetic placeholder substitution when the
	// live search errors or returns nothing.
	NoFallback bool

	// Concurrency limits parallel subjects in AnalyzeAll.
	Concurrency int
}

// Analyze retrieves search results for the subject, substitutes placeholder
// data when live retrieval fails or comes back empty (unless NoFallback),
// extracts trend keywords, and records the run in History when configured.
func (a *Analyzer) Analyze(ctx context.Context, subject string) (*Report, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, trendspot.Errorf(trendspot.EINVALID, "subject required")
	}

	maxResults := a.MaxResults
	if maxResults <= 0 {
		maxResults = trendspot.DefaultMaxResults
	}

	results, err := a.Searcher.Search(ctx, subject, maxResults)
	fallback := false
	if err != nil || len(results) == 0 {
		// Cancellation is not a retrieval failure to paper over.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if a.NoFallback {
			if err != nil {
				return nil, err
			}
		} else {
			results = trendspot.PlaceholderResults(subject)
			if len(results) > maxResults {
				results = results[:maxResults]
			}
			fallback = true
		}
	}

	stopwords := a.Stopwords
	if stopwords == nil {
		stopwords = trendspot.DefaultStopwords()
	}

	report := &Report{
		Subject:    subject,
		Query:      trendspot.SearchQuery(subject),
		Results:    results,
		Keywords:   trendspot.ExtractKeywords(subject, trendspot.Snippets(results), stopwords, a.TopN),
		Fallback:   fallback,
		SearchedAt: time.Now().UTC(),
	}

	if a.History != nil {
		search := &trendspot.Search{
			Subject:    subject,
			Query:      report.Query,
			Fallback:   fallback,
			SearchedAt: report.SearchedAt,
			Results:    results,
		}
		if err := a.History.CreateSearch(ctx, search); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// AnalyzeAll analyzes several subjects concurrently and returns reports in
// subject order. The first failure cancels the remaining work.
func (a *Analyzer) AnalyzeAll(ctx context.Context, subjects []string) ([]*Report, error) {
	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	reports := make([]*Report, len(subjects))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, subject := range subjects {
		g.Go(func() error {
			report, err := a.Analyze(ctx, subject)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
