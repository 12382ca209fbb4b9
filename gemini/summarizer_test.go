package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/trendspot"
	"github.com/fwojciec/trendspot/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer_Summarize_ReturnsErrorWhenSubjectEmpty(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, "") // nil client ok for validation tests

	err := s.Summarize(context.Background(), "  ", []string{"snippet"}, func(string) error { return nil })

	require.Error(t, err)
	assert.Equal(t, trendspot.EINVALID, trendspot.ErrorCode(err))
	assert.Contains(t, trendspot.ErrorMessage(err), "subject required")
}

func TestSummarizer_Summarize_ReturnsErrorWhenCallbackNil(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, "")

	err := s.Summarize(context.Background(), "오사카", []string{"snippet"}, nil)

	require.Error(t, err)
	assert.Equal(t, trendspot.EINVALID, trendspot.ErrorCode(err))
	assert.Contains(t, trendspot.ErrorMessage(err), "callback required")
}

func TestSummarizer_Summarize_ReturnsErrorWhenNoSnippets(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, "")

	err := s.Summarize(context.Background(), "오사카", nil, func(string) error { return nil })

	require.Error(t, err)
	assert.Equal(t, trendspot.ENOTFOUND, trendspot.ErrorCode(err))
	assert.Contains(t, trendspot.ErrorMessage(err), "no snippets")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "travel curator")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildUserPrompt_ContainsSnippets(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("오사카", []string{
		"도톤보리 글리코 상 근처 맛집",
		"우메다 공중정원 야경",
	})

	assert.Contains(t, prompt, "<snippets>")
	assert.Contains(t, prompt, "도톤보리 글리코 상 근처 맛집")
	assert.Contains(t, prompt, "우메다 공중정원 야경")
	assert.Contains(t, prompt, "</snippets>")
}

func TestBuildUserPrompt_ContainsSubject(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("오사카", []string{"snippet"})

	assert.Contains(t, prompt, "Subject: 오사카")
}

func TestBuildUserPrompt_DoesNotContainSystemInstruction(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("오사카", []string{"snippet"})

	assert.NotContains(t, prompt, "travel curator")
}
