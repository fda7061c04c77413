package services

import (
	"context"

	"github.com/gamescorehq/gamescore_app/internal/core/domain"
	"github.com/gamescorehq/gamescore_app/internal/dto"
)

// PlayerReaderSvc defines read operations for player data
type PlayerReaderSvc interface {
	// GetPlayerID retrieves the ID of the player with the given username.
	GetPlayerID(ctx context.Context, username string) (string, error)

	// GetPlayerByID retrieves a player by ID.
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)

	// ListPlayers retrieves a paginated list of players.
	ListPlayers(ctx context.Context, limit, offset int) ([]domain.Player, error)
}

// PlayerAuthSvc defines the login, registration and credential-recovery flows
type PlayerAuthSvc interface {
	// Register creates a new player with a hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Player, error)

	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, req dto.LoginRequest) (string, error)

	// UpdatePlayer re-hashes and saves a new password for the player and
	// clears any outstanding reset token.
	UpdatePlayer(ctx context.Context, playerID string, newPassword string) error

	// ForgotPassword issues a reset token, mails it to the player and
	// returns a session token for the requester.
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (string, error)

	// ResetPassword exchanges a valid reset token for a password update.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
}

// PlayerSvcFacade combines all player-related service interfaces
type PlayerSvcFacade interface {
	PlayerReaderSvc
	PlayerAuthSvc
}
