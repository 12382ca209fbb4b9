package trendspot

import (
	"context"
	"strings"
	"time"
)

// DefaultMaxResults is the default number of search results to retrieve.
const DefaultMaxResults = 15

// SearchResult represents a single web search result about a subject.
// Results are immutable once created by the retrieval layer.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// Validate returns an error if the result contains invalid fields.
func (r *SearchResult) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "search result URL required")
	}
	return nil
}

// Snippets returns the snippet text of each result, in order.
func Snippets(results []*SearchResult) []string {
	snippets := make([]string, 0, len(results))
	for _, r := range results {
		snippets = append(snippets, r.Snippet)
	}
	return snippets
}

// SearchQuery returns the canonical web search query for a subject.
func SearchQuery(subject string) string {
	return strings.TrimSpace(subject) + " 여행 맛집 핫플레이스 추천"
}

// Searcher retrieves recent web search results about a subject.
type Searcher interface {
	// Search returns up to maxResults results for the subject.
	// An empty result set is a legitimate, non-error outcome.
	Search(ctx context.Context, subject string, maxResults int) ([]*SearchResult, error)
}

// Search represents a stored search run with its results.
type Search struct {
	ID         string          `json:"id"`
	Subject    string          `json:"subject"`
	Query      string          `json:"query"`
	Fallback   bool            `json:"fallback"`
	SearchedAt time.Time       `json:"searchedAt"`
	Results    []*SearchResult `json:"results"`
}

// Validate returns an error if the search contains invalid fields.
func (s *Search) Validate() error {
	if s.Subject == "" {
		return Errorf(EINVALID, "search subject required")
	}
	for _, r := range s.Results {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SearchService represents a service for persisting search history.
type SearchService interface {
	// CreateSearch stores a search run and its results.
	CreateSearch(ctx context.Context, search *Search) error

	// FindSearchByID retrieves a stored search by ID, including results.
	// Returns ENOTFOUND if the search does not exist.
	FindSearchByID(ctx context.Context, id string) (*Search, error)

	// FindSearches retrieves stored searches matching the filter,
	// most recent first.
	FindSearches(ctx context.Context, filter SearchFilter) ([]*Search, error)

	// DeleteSearchesBySubject removes all stored searches for a subject.
	DeleteSearchesBySubject(ctx context.Context, subject string) error
}

// SearchFilter represents a filter for FindSearches.
type SearchFilter struct {
	ID      *string `json:"id"`
	Subject *string `json:"subject"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
