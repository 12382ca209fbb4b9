// Package gemini implements AI summarization using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/trendspot"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for summarization.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements trendspot.Summarizer at compile time.
var _ trendspot.Summarizer = (*Summarizer)(nil)

// Summarizer implements trendspot.Summarizer using Google Gemini.
// Generated text is streamed chunk by chunk to the caller's callback.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize generates a summary of the snippets for the subject, passing
// each generated text chunk to fn as it arrives.
func (s *Summarizer) Summarize(ctx context.Context, subject string, snippets []string, fn trendspot.SummaryChunkFunc) error {
	if strings.TrimSpace(subject) == "" {
		return trendspot.Errorf(trendspot.EINVALID, "subject required")
	}
	if fn == nil {
		return trendspot.Errorf(trendspot.EINVALID, "chunk callback required")
	}
	if len(snippets) == 0 {
		return trendspot.Errorf(trendspot.ENOTFOUND, "no snippets to summarize for %q", subject)
	}

	prompt := BuildUserPrompt(subject, snippets)
	config := BuildConfig()

	for resp, err := range s.client.Models.GenerateContentStream(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	) {
		if err != nil {
			return err
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if part.Text == "" {
					continue
				}
				if err := fn(part.Text); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a travel curator summarizing recent web search snippets about a city. Describe the trending spots, food, and activities based only on the snippets provided. Respond in the language the snippets are written in.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the snippets and subject.
func BuildUserPrompt(subject string, snippets []string) string {
	var sb strings.Builder
	sb.WriteString("<snippets>\n")
	for i, snippet := range snippets {
		sb.WriteString("<snippet>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<content>%s</content>\n", snippet)
		sb.WriteString("</snippet>\n")
	}
	sb.WriteString("</snippets>\n\n")
	fmt.Fprintf(&sb, "Subject: %s\n", subject)
	sb.WriteString("Summarize the current travel and food trends for this subject based on the snippets above.")
	return sb.String()
}
