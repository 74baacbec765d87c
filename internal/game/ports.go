package game

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=game

// Repository defines the contract for game data storage. Listing queries
// are windowed at the store; each filtered listing has a count query that
// applies the identical predicate.
type Repository interface {
	List(ctx context.Context, page, pageSize int) ([]Game, error)
	GetByID(ctx context.Context, id int) (Game, error)
	ListByCategory(ctx context.Context, category string, page, pageSize int) ([]Game, error)
	SearchByTitle(ctx context.Context, term string, page, pageSize int) ([]Game, error)
	TopRated(ctx context.Context, count int) ([]Game, error)
	Recent(ctx context.Context, count int) ([]Game, error)
	Categories(ctx context.Context) ([]string, error)

	TotalCount(ctx context.Context) (int, error)
	CountByCategory(ctx context.Context, category string) (int, error)
	CountBySearch(ctx context.Context, term string) (int, error)
}
