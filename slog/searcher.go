// Package slog provides log/slog-based logging decorators for trendspot
// services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/trendspot"
)

// Ensure LoggingSearcher implements trendspot.Searcher.
var _ trendspot.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   trendspot.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next trendspot.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, subject string, maxResults int) (results []*trendspot.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"subject", subject,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, subject, maxResults)
}
