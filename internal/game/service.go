package game

import (
	"context"
)

// Service provides the catalog query operations. It owns envelope assembly
// and projection; windowing and matching live in the repository.
type Service struct {
	repo Repository
}

// NewService creates a new game service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListAll returns one page of the full catalog, newest releases first.
//
// The listing and the count are two separate store round-trips; under
// concurrent writes they may observe different snapshots, which is accepted.
func (s *Service) ListAll(ctx context.Context, page, pageSize int) (Page, error) {
	games, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return Page{}, err
	}
	total, err := s.repo.TotalCount(ctx)
	if err != nil {
		return Page{}, err
	}
	return NewPage(toSummaries(games), total, page, pageSize), nil
}

// ListByCategory returns one page of games in a category (case-insensitive).
func (s *Service) ListByCategory(ctx context.Context, category string, page, pageSize int) (Page, error) {
	games, err := s.repo.ListByCategory(ctx, category, page, pageSize)
	if err != nil {
		return Page{}, err
	}
	total, err := s.repo.CountByCategory(ctx, category)
	if err != nil {
		return Page{}, err
	}
	return NewPage(toSummaries(games), total, page, pageSize), nil
}

// Search returns one page of games whose title contains term,
// case-insensitively.
func (s *Service) Search(ctx context.Context, term string, page, pageSize int) (Page, error) {
	games, err := s.repo.SearchByTitle(ctx, term, page, pageSize)
	if err != nil {
		return Page{}, err
	}
	total, err := s.repo.CountBySearch(ctx, term)
	if err != nil {
		return Page{}, err
	}
	return NewPage(toSummaries(games), total, page, pageSize), nil
}

// GetByID returns the full detail for one game, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int) (Game, error) {
	return s.repo.GetByID(ctx, id)
}

// TopRated returns at most count games by rating, as a flat shelf.
func (s *Service) TopRated(ctx context.Context, count int) ([]Summary, error) {
	games, err := s.repo.TopRated(ctx, count)
	if err != nil {
		return nil, err
	}
	return toSummaries(games), nil
}

// Recent returns at most count games by release date, as a flat shelf.
func (s *Service) Recent(ctx context.Context, count int) ([]Summary, error) {
	games, err := s.repo.Recent(ctx, count)
	if err != nil {
		return nil, err
	}
	return toSummaries(games), nil
}

// Categories returns the distinct category labels, sorted ascending.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func toSummaries(games []Game) []Summary {
	out := make([]Summary, 0, len(games))
	for _, g := range games {
		out = append(out, g.ToSummary())
	}
	return out
}
