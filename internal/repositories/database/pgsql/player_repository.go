package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gamescorehq/gamescore_app/internal/apperrors"
	"github.com/gamescorehq/gamescore_app/internal/core/domain"
	portsrepo "github.com/gamescorehq/gamescore_app/internal/core/ports/repositories"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPlayerRepository struct {
	db *pgxpool.Pool
}

func newPgxPlayerRepository(db *pgxpool.Pool) portsrepo.PlayerRepositoryFacade {
	return &PgxPlayerRepository{db: db}
}

// Ensure PgxPlayerRepository implements portsrepo.PlayerRepositoryFacade
var _ portsrepo.PlayerRepositoryFacade = (*PgxPlayerRepository)(nil)

const playerColumns = `player_id, username, password_hash, email, reset_token, reset_token_expires_at, created_at, last_updated_at`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var player domain.Player
	err := row.Scan(
		&player.PlayerID,
		&player.Username,
		&player.PasswordHash,
		&player.Email,
		&player.ResetToken,
		&player.ResetTokenExpiresAt,
		&player.CreatedAt,
		&player.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *PgxPlayerRepository) SavePlayer(ctx context.Context, player domain.Player) error {
	query := `
        INSERT INTO players (player_id, username, password_hash, email, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		player.PlayerID,
		player.Username,
		player.PasswordHash,
		player.Email,
		player.CreatedAt,
		player.LastUpdatedAt,
	)
	if err != nil {
		// The unique index on username resolves races between concurrent
		// registrations; surface it as a duplicate, not a raw pg error.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("username %q is already taken: %w", player.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (r *PgxPlayerRepository) FindPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1;`
	player, err := scanPlayer(r.db.QueryRow(ctx, query, playerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find player by ID %s: %w", playerID, err)
	}
	return player, nil
}

func (r *PgxPlayerRepository) FindPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE username = $1;`
	player, err := scanPlayer(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find player by username: %w", err)
	}
	return player, nil
}

func (r *PgxPlayerRepository) FindPlayerByResetToken(ctx context.Context, token string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE reset_token = $1;`
	player, err := scanPlayer(r.db.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find player by reset token: %w", err)
	}
	return player, nil
}

func (r *PgxPlayerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM players WHERE username = $1);`
	var exists bool
	if err := r.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return exists, nil
}

func (r *PgxPlayerRepository) FindPlayers(ctx context.Context, limit int, offset int) ([]domain.Player, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + playerColumns + `
        FROM players
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []domain.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, *player)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating player rows: %w", rows.Err())
	}

	return players, nil
}

// UpdatePassword replaces the stored hash and clears the reset token in the
// same statement: a successful password change always invalidates any
// outstanding reset token.
func (r *PgxPlayerRepository) UpdatePassword(ctx context.Context, playerID string, passwordHash string, updatedAt time.Time) error {
	query := `
        UPDATE players
        SET password_hash = $1, reset_token = NULL, reset_token_expires_at = NULL, last_updated_at = $2
        WHERE player_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, passwordHash, updatedAt, playerID)
	if err != nil {
		return fmt.Errorf("failed to execute password update: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("player not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPlayerRepository) UpdateResetToken(ctx context.Context, playerID string, token string, expiresAt time.Time) error {
	query := `
        UPDATE players
        SET reset_token = $1, reset_token_expires_at = $2, last_updated_at = $3
        WHERE player_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query, token, expiresAt, time.Now(), playerID)
	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("player not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
