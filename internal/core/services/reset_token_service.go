package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gamescorehq/gamescore_app/internal/apperrors"
	"github.com/gamescorehq/gamescore_app/internal/core/domain"
	portsrepo "github.com/gamescorehq/gamescore_app/internal/core/ports/repositories"
	portssvc "github.com/gamescorehq/gamescore_app/internal/core/ports/services"
	"github.com/gamescorehq/gamescore_app/internal/platform/config"
	"github.com/gamescorehq/gamescore_app/internal/utils"
)

// resetTokenService implements ResetTokenSvcFacade. Tokens come from a
// CSPRNG and are stored inline on the player row with an explicit expiry;
// issuing a new token overwrites (and so invalidates) any prior one.
type resetTokenService struct {
	playerRepo  portsrepo.PlayerRepositoryFacade
	expiry      time.Duration
	lengthBytes int
}

// NewResetTokenService creates a new instance of resetTokenService.
func NewResetTokenService(cfg *config.Config, playerRepo portsrepo.PlayerRepositoryFacade) portssvc.ResetTokenSvcFacade {
	return &resetTokenService{
		playerRepo:  playerRepo,
		expiry:      cfg.ResetTokenExpiryDuration,
		lengthBytes: cfg.ResetTokenLengthBytes,
	}
}

// IssueResetToken generates a random token and persists it against the
// player with the given username.
func (s *resetTokenService) IssueResetToken(ctx context.Context, username string) (string, error) {
	player, err := s.playerRepo.FindPlayerByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to resolve player for reset token: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(s.lengthBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := time.Now().Add(s.expiry)
	if err := s.playerRepo.UpdateResetToken(ctx, player.PlayerID, token, expiresAt); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, nil
}

// ConsumeResetToken resolves the player owning this exact token value. The
// token is not cleared here; any subsequent successful password update
// clears it, which is what makes the token single-use.
func (s *resetTokenService) ConsumeResetToken(ctx context.Context, token string) (*domain.Player, error) {
	if token == "" {
		return nil, fmt.Errorf("empty reset token: %w", apperrors.ErrInvalidToken)
	}

	player, err := s.playerRepo.FindPlayerByResetToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if player.ResetTokenExpiresAt != nil && time.Now().After(*player.ResetTokenExpiresAt) {
		return nil, fmt.Errorf("reset token has expired: %w", apperrors.ErrUnauthorized)
	}
	return player, nil
}
