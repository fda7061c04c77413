package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/gamescorehq/gamescore_app/internal/core/domain"
	portsrepo "github.com/gamescorehq/gamescore_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGameRepository struct {
	db *pgxpool.Pool
}

func newPgxGameRepository(db *pgxpool.Pool) portsrepo.GameRepositoryFacade {
	return &PgxGameRepository{db: db}
}

// Ensure PgxGameRepository implements portsrepo.GameRepositoryFacade
var _ portsrepo.GameRepositoryFacade = (*PgxGameRepository)(nil)

func (r *PgxGameRepository) SaveGame(ctx context.Context, game domain.Game) error {
	query := `
        INSERT INTO games (game_id, username, score, start_time, end_time)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		game.GameID,
		game.Username,
		game.Score,
		game.StartTime,
		game.EndTime,
	)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

func (r *PgxGameRepository) FindGamesByUsername(ctx context.Context, username string, limit int) ([]domain.Game, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
        SELECT game_id, username, score, start_time, end_time
        FROM games
        WHERE username = $1
        ORDER BY score DESC, end_time DESC
        LIMIT $2;
    `
	rows, err := r.db.Query(ctx, query, username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	games := []domain.Game{}
	for rows.Next() {
		var game domain.Game
		err := rows.Scan(
			&game.GameID,
			&game.Username,
			&game.Score,
			&game.StartTime,
			&game.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		games = append(games, game)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating game rows: %w", rows.Err())
	}

	return games, nil
}

func (r *PgxGameRepository) FindLeaderboard(ctx context.Context, since time.Time, limit int) ([]domain.ScoreRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
        SELECT p.username, SUM(g.score) AS total_score
        FROM games g
        JOIN players p ON p.username = g.username
        WHERE g.end_time > $1 AND g.end_time <= now()
        GROUP BY p.username
        ORDER BY total_score DESC
        LIMIT $2;
    `
	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	records := []domain.ScoreRecord{}
	for rows.Next() {
		var record domain.ScoreRecord
		if err := rows.Scan(&record.Username, &record.Score); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		records = append(records, record)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating leaderboard rows: %w", rows.Err())
	}

	return records, nil
}
