package trendspot_test

import (
	"testing"

	"github.com/fwojciec/trendspot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderResults(t *testing.T) {
	t.Parallel()

	t.Run("returns a fixed-size valid result set", func(t *testing.T) {
		t.Parallel()

		results := trendspot.PlaceholderResults("오사카")

		require.Len(t, results, 5)
		for _, r := range results {
			assert.NoError(t, r.Validate())
			assert.Contains(t, r.Title, "오사카")
			assert.Contains(t, r.Snippet, "오사카")
		}
	})

	t.Run("snippets yield extractable keywords", func(t *testing.T) {
		t.Parallel()

		results := trendspot.PlaceholderResults("서울")

		keywords := trendspot.ExtractKeywords("서울",
			trendspot.Snippets(results), trendspot.DefaultStopwords(), 10)

		assert.NotEmpty(t, keywords)
	})
}
