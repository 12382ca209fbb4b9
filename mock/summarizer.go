package mock

import (
	"context"

	"github.com/fwojciec/trendspot"
)

var _ trendspot.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of trendspot.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, subject string, snippets []string, fn trendspot.SummaryChunkFunc) error
}

func (s *Summarizer) Summarize(ctx context.Context, subject string, snippets []string, fn trendspot.SummaryChunkFunc) error {
	return s.SummarizeFn(ctx, subject, snippets, fn)
}
