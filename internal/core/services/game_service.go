package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gamescorehq/gamescore_app/internal/apperrors"
	"github.com/gamescorehq/gamescore_app/internal/core/domain"
	portsrepo "github.com/gamescorehq/gamescore_app/internal/core/ports/repositories"
	portssvc "github.com/gamescorehq/gamescore_app/internal/core/ports/services"
	"github.com/google/uuid"
)

const defaultLeaderboardLimit = 10

// gameService implements GameSvcFacade. Game rows are keyed by username,
// so recording a game requires the player to resolve first.
type gameService struct {
	gameRepo   portsrepo.GameRepositoryFacade
	playerRepo portsrepo.PlayerRepositoryFacade
}

// NewGameService creates a new instance of gameService.
func NewGameService(gameRepo portsrepo.GameRepositoryFacade, playerRepo portsrepo.PlayerRepositoryFacade) portssvc.GameSvcFacade {
	return &gameService{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
	}
}

// AddGame records a finished game for the player with the given ID.
func (s *gameService) AddGame(ctx context.Context, playerID string, score int) error {
	if score < 0 {
		return fmt.Errorf("score cannot be negative: %w", apperrors.ErrValidation)
	}

	player, err := s.playerRepo.FindPlayerByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to resolve player for game record: %w", err)
	}

	game := domain.Game{
		GameID:   uuid.NewString(),
		Username: player.Username,
		Score:    score,
		EndTime:  time.Now(),
	}
	if err := s.gameRepo.SaveGame(ctx, game); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// WeeklyLeaderboard returns per-player score totals over the last 7 days.
func (s *gameService) WeeklyLeaderboard(ctx context.Context, limit int) ([]domain.ScoreRecord, error) {
	return s.leaderboard(ctx, 7*24*time.Hour, limit)
}

// MonthlyLeaderboard returns per-player score totals over the last 30 days.
func (s *gameService) MonthlyLeaderboard(ctx context.Context, limit int) ([]domain.ScoreRecord, error) {
	return s.leaderboard(ctx, 30*24*time.Hour, limit)
}

func (s *gameService) leaderboard(ctx context.Context, window time.Duration, limit int) ([]domain.ScoreRecord, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	records, err := s.gameRepo.FindLeaderboard(ctx, time.Now().Add(-window), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	return records, nil
}

// ListGamesByPlayer retrieves a player's games, highest score first.
func (s *gameService) ListGamesByPlayer(ctx context.Context, username string, limit int) ([]domain.Game, error) {
	games, err := s.gameRepo.FindGamesByUsername(ctx, username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}
