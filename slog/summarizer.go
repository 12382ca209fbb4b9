package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/trendspot"
)

// Ensure LoggingSummarizer implements trendspot.Summarizer.
var _ trendspot.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with debug logging.
type LoggingSummarizer struct {
	next   trendspot.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next trendspot.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer, counting streamed chunks,
// and logs the operation.
func (s *LoggingSummarizer) Summarize(ctx context.Context, subject string, snippets []string, fn trendspot.SummaryChunkFunc) (err error) {
	chunks := 0
	counting := fn
	if fn != nil {
		counting = func(chunk string) error {
			chunks++
			return fn(chunk)
		}
	}

	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"subject", subject,
			"snippets", len(snippets),
			"chunks", chunks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, subject, snippets, counting)
}
