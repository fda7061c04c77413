package repositories

import (
	"context"
	"time"

	"github.com/gamescorehq/gamescore_app/internal/core/domain"
)

// PlayerReader defines read operations for player data
type PlayerReader interface {
	// FindPlayerByID retrieves a specific player by their ID.
	FindPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)

	// FindPlayerByUsername retrieves a player by their unique username.
	FindPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)

	// FindPlayerByResetToken retrieves the player owning this exact reset-token value.
	FindPlayerByResetToken(ctx context.Context, token string) (*domain.Player, error)

	// ExistsByUsername reports whether a player with this username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// FindPlayers retrieves a paginated list of players.
	FindPlayers(ctx context.Context, limit int, offset int) ([]domain.Player, error)
}

// PlayerWriter defines write operations for player data
type PlayerWriter interface {
	// SavePlayer persists a new player. The store's unique constraint on
	// username is the arbiter for concurrent registrations.
	SavePlayer(ctx context.Context, player domain.Player) error

	// UpdatePassword replaces the stored password hash and clears any
	// outstanding reset token in the same statement.
	UpdatePassword(ctx context.Context, playerID string, passwordHash string, updatedAt time.Time) error

	// UpdateResetToken stores a reset token and its expiry on the player,
	// overwriting any previously issued token.
	UpdateResetToken(ctx context.Context, playerID string, token string, expiresAt time.Time) error
}

// PlayerRepositoryFacade combines all player-related repository interfaces.
// This is a facade for clients that need access to all operations
type PlayerRepositoryFacade interface {
	PlayerReader
	PlayerWriter
}
