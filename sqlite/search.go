package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/trendspot"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ trendspot.SearchService = (*SearchService)(nil)

// SearchService implements trendspot.SearchService using SQLite.
type SearchService struct {
	db *DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db}
}

// hashResult computes xxHash of a result's content and returns a hex string.
// Used to drop duplicate result rows within a single search run.
func hashResult(r *trendspot.SearchResult) string {
	h := xxhash.Sum64String(r.Title + "\x00" + r.Snippet + "\x00" + r.URL)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateSearch stores a search run and its results. Duplicate results
// (identical title, snippet, and URL) within the run are stored once.
func (s *SearchService) CreateSearch(ctx context.Context, search *trendspot.Search) error {
	if err := search.Validate(); err != nil {
		return err
	}

	search.ID = uuid.New().String()
	if search.SearchedAt.IsZero() {
		search.SearchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (id, subject, query, fallback, searched_at)
		VALUES (?, ?, ?, ?, ?)
	`, search.ID, search.Subject, search.Query, search.Fallback,
		search.SearchedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(search.Results))
	position := 0
	for _, r := range search.Results {
		hash := hashResult(r)
		if seen[hash] {
			continue
		}
		seen[hash] = true

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO results (id, search_id, position, title, snippet, url, content_hash)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), search.ID, position, r.Title, r.Snippet, r.URL, hash)
		if err != nil {
			return err
		}
		position++
	}

	return nil
}

// FindSearchByID retrieves a stored search by ID, including its results.
func (s *SearchService) FindSearchByID(ctx context.Context, id string) (*trendspot.Search, error) {
	var search trendspot.Search
	var searchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, subject, query, fallback, searched_at
		FROM searches
		WHERE id = ?
	`, id).Scan(&search.ID, &search.Subject, &search.Query, &search.Fallback, &searchedAt)

	if err == sql.ErrNoRows {
		return nil, trendspot.Errorf(trendspot.ENOTFOUND, "search not found")
	}
	if err != nil {
		return nil, err
	}

	search.SearchedAt, err = parseRFC3339(searchedAt, "searched_at")
	if err != nil {
		return nil, err
	}

	search.Results, err = s.findResults(ctx, search.ID)
	if err != nil {
		return nil, err
	}

	return &search, nil
}

// FindSearches retrieves stored searches matching the filter, most recent first.
func (s *SearchService) FindSearches(ctx context.Context, filter trendspot.SearchFilter) ([]*trendspot.Search, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, subject, query, fallback, searched_at FROM searches WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Subject != nil {
		query.WriteString(" AND subject = ?")
		args = append(args, *filter.Subject)
	}

	query.WriteString(" ORDER BY searched_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	searches := []*trendspot.Search{}
	for rows.Next() {
		var search trendspot.Search
		var searchedAt string

		if err := rows.Scan(&search.ID, &search.Subject, &search.Query, &search.Fallback, &searchedAt); err != nil {
			return nil, err
		}

		search.SearchedAt, err = parseRFC3339(searchedAt, "searched_at")
		if err != nil {
			return nil, err
		}

		searches = append(searches, &search)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, search := range searches {
		search.Results, err = s.findResults(ctx, search.ID)
		if err != nil {
			return nil, err
		}
	}

	return searches, nil
}

// DeleteSearchesBySubject removes all stored searches for a subject.
// Result rows are removed by the foreign key cascade.
func (s *SearchService) DeleteSearchesBySubject(ctx context.Context, subject string) error {
	if subject == "" {
		return trendspot.Errorf(trendspot.EINVALID, "subject required")
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM searches WHERE subject = ?`, subject)
	return err
}

// findResults loads the result rows for a search, in stored order.
func (s *SearchService) findResults(ctx context.Context, searchID string) ([]*trendspot.SearchResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, snippet, url
		FROM results
		WHERE search_id = ?
		ORDER BY position
	`, searchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*trendspot.SearchResult{}
	for rows.Next() {
		var r trendspot.SearchResult
		if err := rows.Scan(&r.Title, &r.Snippet, &r.URL); err != nil {
			return nil, err
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}
