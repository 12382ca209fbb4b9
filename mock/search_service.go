package mock

import (
	"context"

	"github.com/fwojciec/trendspot"
)

var _ trendspot.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of trendspot.SearchService.
type SearchService struct {
	CreateSearchFn            func(ctx context.Context, search *trendspot.Search) error
	FindSearchByIDFn          func(ctx context.Context, id string) (*trendspot.Search, error)
	FindSearchesFn            func(ctx context.Context, filter trendspot.SearchFilter) ([]*trendspot.Search, error)
	DeleteSearchesBySubjectFn func(ctx context.Context, subject string) error
}

func (s *SearchService) CreateSearch(ctx context.Context, search *trendspot.Search) error {
	return s.CreateSearchFn(ctx, search)
}

func (s *SearchService) FindSearchByID(ctx context.Context, id string) (*trendspot.Search, error) {
	return s.FindSearchByIDFn(ctx, id)
}

func (s *SearchService) FindSearches(ctx context.Context, filter trendspot.SearchFilter) ([]*trendspot.Search, error) {
	return s.FindSearchesFn(ctx, filter)
}

func (s *SearchService) DeleteSearchesBySubject(ctx context.Context, subject string) error {
	return s.DeleteSearchesBySubjectFn(ctx, subject)
}
