package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// selectColumns is shared by every query that hydrates a game with its
// optional media row. m.game_id doubles as the row-exists marker.
const selectColumns = `
	g.id, g.title, g.description, g.developer, g.release_date, g.category,
	g.rating, g.download_link, g.system_requirements,
	m.game_id, m.banner, m.icon, m.media_one, m.media_two, m.media_three, m.media_four`

func scanGame(row pgx.Row) (Game, error) {
	var g Game
	var mediaID *int
	var banner, icon, m1, m2, m3, m4 *string

	err := row.Scan(
		&g.ID, &g.Title, &g.Description, &g.Developer, &g.ReleaseDate, &g.Category,
		&g.Rating, &g.DownloadLink, &g.SystemRequirements,
		&mediaID, &banner, &icon, &m1, &m2, &m3, &m4,
	)
	if err != nil {
		return Game{}, err
	}

	if mediaID != nil {
		g.MediaFile = &MediaFile{
			GameID:          *mediaID,
			Banner:          deref(banner),
			Icon:            deref(icon),
			FirstMediaFile:  deref(m1),
			SecondMediaFile: deref(m2),
			ThirdMediaFile:  deref(m3),
			FourthMediaFile: deref(m4),
		}
	}
	return g, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *PostgresRepo) queryGames(ctx context.Context, sql string, args ...any) ([]Game, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// List returns one window of the catalog, newest releases first. Games
// without a release date sort last; id breaks ties so pages are stable.
func (r *PostgresRepo) List(ctx context.Context, page, pageSize int) ([]Game, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM games g
		LEFT JOIN media_files m ON m.game_id = g.id
		ORDER BY g.release_date DESC NULLS LAST, g.id ASC
		LIMIT $1 OFFSET $2`, selectColumns)

	games, err := r.queryGames(ctx, sql, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int) (Game, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM games g
		LEFT JOIN media_files m ON m.game_id = g.id
		WHERE g.id = $1`, selectColumns)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	g, err := scanGame(r.db.QueryRow(timeoutCtx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Game{}, ErrNotFound
		}
		return Game{}, fmt.Errorf("get game %d: %w", id, err)
	}
	return g, nil
}

func (r *PostgresRepo) ListByCategory(ctx context.Context, category string, page, pageSize int) ([]Game, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM games g
		LEFT JOIN media_files m ON m.game_id = g.id
		WHERE LOWER(g.category) = LOWER($1)
		ORDER BY g.rating DESC, g.id ASC
		LIMIT $2 OFFSET $3`, selectColumns)

	games, err := r.queryGames(ctx, sql, category, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("list games by category: %w", err)
	}
	return games, nil
}

func (r *PostgresRepo) SearchByTitle(ctx context.Context, term string, page, pageSize int) ([]Game, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM games g
		LEFT JOIN media_files m ON m.game_id = g.id
		WHERE g.title ILIKE $1
		ORDER BY g.rating DESC, g.id ASC
		LIMIT $2 OFFSET $3`, selectColumns)

	games, err := r.queryGames(ctx, sql, "%"+term+"%", pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}
	return games, nil
}

func (r *PostgresRepo) TopRated(ctx context.Context, count int) ([]Game, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM games g
		LEFT JOIN media_files m ON m.game_id = g.id
		ORDER BY g.rating DESC, g.id ASC
		LIMIT $1`, selectColumns)

	games, err := r.queryGames(ctx, sql, count)
	if err != nil {
		return nil, fmt.Errorf("top rated games: %w", err)
	}
	return games, nil
}

func (r *PostgresRepo) Recent(ctx context.Context, count int) ([]Game, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM games g
		LEFT JOIN media_files m ON m.game_id = g.id
		ORDER BY g.release_date DESC NULLS LAST, g.id ASC
		LIMIT $1`, selectColumns)

	games, err := r.queryGames(ctx, sql, count)
	if err != nil {
		return nil, fmt.Errorf("recent games: %w", err)
	}
	return games, nil
}

// Categories collapses labels case-insensitively and keeps one stored
// spelling per label, chosen deterministically.
func (r *PostgresRepo) Categories(ctx context.Context) ([]string, error) {
	const sql = `
		SELECT DISTINCT ON (LOWER(category)) category
		FROM games
		ORDER BY LOWER(category) ASC, category ASC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, sql)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) TotalCount(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM games")
}

func (r *PostgresRepo) CountByCategory(ctx context.Context, category string) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM games WHERE LOWER(category) = LOWER($1)", category)
}

func (r *PostgresRepo) CountBySearch(ctx context.Context, term string) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM games WHERE title ILIKE $1", "%"+term+"%")
}

func (r *PostgresRepo) count(ctx context.Context, sql string, args ...any) (int, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRow(timeoutCtx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return total, nil
}
