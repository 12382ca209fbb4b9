package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/trendspot"
	main "github.com/fwojciec/trendspot/cmd/trendspot"
	"github.com/fwojciec/trendspot/mock"
	"github.com/fwojciec/trendspot/trend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("streams summary chunks to stdout", func(t *testing.T) {
		t.Parallel()

		summarizer := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, subject string, snippets []string, fn trendspot.SummaryChunkFunc) error {
				assert.Equal(t, "오사카", subject)
				assert.NotEmpty(t, snippets)
				for _, chunk := range []string{"도톤보리와 ", "우메다가 ", "인기입니다."} {
					if err := fn(chunk); err != nil {
						return err
					}
				}
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Analyzer:   &trend.Analyzer{Searcher: liveSearcher()},
			Summarizer: summarizer,
		}

		cmd := &main.SummarizeCmd{City: "오사카", MaxResults: 15}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "도톤보리와 우메다가 인기입니다.")
	})

	t.Run("reports summarizer error", func(t *testing.T) {
		t.Parallel()

		summarizer := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, subject string, snippets []string, fn trendspot.SummaryChunkFunc) error {
				return trendspot.Errorf(trendspot.EINTERNAL, "model unavailable")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Analyzer:   &trend.Analyzer{Searcher: liveSearcher()},
			Summarizer: summarizer,
		}

		cmd := &main.SummarizeCmd{City: "오사카", MaxResults: 15}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "model unavailable")
	})

	t.Run("notes placeholder data when search is empty", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(ctx context.Context, subject string, maxResults int) ([]*trendspot.SearchResult, error) {
				return nil, nil
			},
		}
		summarizer := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, subject string, snippets []string, fn trendspot.SummaryChunkFunc) error {
				return fn("요약")
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Analyzer:   &trend.Analyzer{Searcher: searcher},
			Summarizer: summarizer,
		}

		cmd := &main.SummarizeCmd{City: "오사카", MaxResults: 15}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "placeholder data")
		assert.Contains(t, stdout.String(), "요약")
	})
}
