package services

import (
	"context"

	"github.com/gamescorehq/gamescore_app/internal/core/domain"
)

// GameSvcFacade defines game-record and leaderboard operations
type GameSvcFacade interface {
	// AddGame records a finished game for the player with the given ID.
	AddGame(ctx context.Context, playerID string, score int) error

	// WeeklyLeaderboard returns per-player score totals for the last 7 days.
	WeeklyLeaderboard(ctx context.Context, limit int) ([]domain.ScoreRecord, error)

	// MonthlyLeaderboard returns per-player score totals for the last 30 days.
	MonthlyLeaderboard(ctx context.Context, limit int) ([]domain.ScoreRecord, error)

	// ListGamesByPlayer retrieves a player's games, highest score first.
	ListGamesByPlayer(ctx context.Context, username string, limit int) ([]domain.Game, error)
}
