package repositories

import (
	"context"
	"time"

	"github.com/gamescorehq/gamescore_app/internal/core/domain"
)

// GameReader defines read operations for game records
type GameReader interface {
	// FindGamesByUsername retrieves a player's games, highest score first.
	FindGamesByUsername(ctx context.Context, username string, limit int) ([]domain.Game, error)

	// FindLeaderboard aggregates per-player score totals for games that
	// ended after `since`, ordered by total descending.
	FindLeaderboard(ctx context.Context, since time.Time, limit int) ([]domain.ScoreRecord, error)
}

// GameWriter defines write operations for game records
type GameWriter interface {
	// SaveGame persists a finished game.
	SaveGame(ctx context.Context, game domain.Game) error
}

// GameRepositoryFacade combines all game-related repository interfaces
type GameRepositoryFacade interface {
	GameReader
	GameWriter
}
