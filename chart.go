package trendspot

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultChartWidth is the bar length, in cells, of the most frequent keyword.
const DefaultChartWidth = 40

// FormatBarChart renders keyword counts as a horizontal text bar chart,
// one row per keyword, bars scaled to the highest frequency. Returns an
// informational placeholder when there are no keywords.
func FormatBarChart(keywords []KeywordCount, width int) string {
	if len(keywords) == 0 {
		return "Not enough text to extract trend keywords.\n"
	}
	if width <= 0 {
		width = DefaultChartWidth
	}

	maxFreq := 0
	labelWidth := 0
	for _, kc := range keywords {
		if kc.Frequency > maxFreq {
			maxFreq = kc.Frequency
		}
		if n := utf8.RuneCountInString(kc.Keyword); n > labelWidth {
			labelWidth = n
		}
	}

	var sb strings.Builder
	for _, kc := range keywords {
		bars := kc.Frequency * width / maxFreq
		if bars < 1 {
			bars = 1
		}
		sb.WriteString(padRight(kc.Keyword, labelWidth))
		sb.WriteString("  ")
		sb.WriteString(strings.Repeat("█", bars))
		fmt.Fprintf(&sb, " %d\n", kc.Frequency)
	}
	return sb.String()
}

// FormatResults formats search results as a numbered review-card listing.
// Uses the title if available, falls back to the URL. Returns an
// informational placeholder when there are no results.
func FormatResults(results []*SearchResult) string {
	if len(results) == 0 {
		return "No search results to display.\n"
	}

	var sb strings.Builder
	for i, r := range results {
		title := r.Title
		if title == "" {
			title = r.URL
		}
		fmt.Fprintf(&sb, "%d. %s\n   %s\n", i+1, title, r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&sb, "   %s\n", r.Snippet)
		}
	}
	return sb.String()
}

// padRight pads s with spaces to the given width, counted in runes.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
