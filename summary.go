package trendspot

import "context"

// SummaryChunkFunc receives streamed summary text as it is generated.
// Returning an error stops the stream.
type SummaryChunkFunc func(chunk string) error

// Summarizer produces a natural-language summary of search snippets.
type Summarizer interface {
	// Summarize generates a summary of the snippets for the subject,
	// passing each generated text chunk to fn as it arrives.
	// Returns ENOTFOUND if there are no snippets to summarize.
	Summarize(ctx context.Context, subject string, snippets []string, fn SummaryChunkFunc) error
}
