package mock

import (
	"context"

	"github.com/fwojciec/trendspot"
)

var _ trendspot.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of trendspot.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, subject string, maxResults int) ([]*trendspot.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, subject string, maxResults int) ([]*trendspot.SearchResult, error) {
	return s.SearchFn(ctx, subject, maxResults)
}
