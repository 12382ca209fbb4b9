package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/trendspot"
	"github.com/fwojciec/trendspot/mock"
	tslog "github.com/fwojciec/trendspot/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs search with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, subject string, maxResults int) ([]*trendspot.SearchResult, error) {
				return []*trendspot.SearchResult{
					{URL: "https://example.com/a"},
					{URL: "https://example.com/b"},
				}, nil
			},
		}

		searcher := tslog.NewLoggingSearcher(inner, logger)
		results, err := searcher.Search(context.Background(), "오사카", 15)

		require.NoError(t, err)
		assert.Len(t, results, 2)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "subject=오사카")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, subject string, maxResults int) ([]*trendspot.SearchResult, error) {
				return nil, errors.New("connection failed")
			},
		}

		searcher := tslog.NewLoggingSearcher(inner, logger)
		_, err := searcher.Search(context.Background(), "오사카", 15)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection failed\"")
	})
}
