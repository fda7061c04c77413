package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gamescorehq/gamescore_app/internal/apperrors"
	"github.com/gamescorehq/gamescore_app/internal/core/domain"
	portsrepo "github.com/gamescorehq/gamescore_app/internal/core/ports/repositories"
	portssvc "github.com/gamescorehq/gamescore_app/internal/core/ports/services"
	"github.com/gamescorehq/gamescore_app/internal/dto"
	"github.com/gamescorehq/gamescore_app/internal/utils"
	"github.com/google/uuid"
)

// playerService implements PlayerSvcFacade. It orchestrates the credential
// store, the password hasher, the session token codec, the reset token
// issuer and the mail capability; it holds no state of its own.
type playerService struct {
	playerRepo portsrepo.PlayerRepositoryFacade
	tokenSvc   portssvc.TokenSvcFacade
	resetSvc   portssvc.ResetTokenSvcFacade
	mailer     portssvc.MailSender
}

// NewPlayerService creates a new instance of playerService.
func NewPlayerService(
	playerRepo portsrepo.PlayerRepositoryFacade,
	tokenSvc portssvc.TokenSvcFacade,
	resetSvc portssvc.ResetTokenSvcFacade,
	mailer portssvc.MailSender,
) portssvc.PlayerSvcFacade {
	return &playerService{
		playerRepo: playerRepo,
		tokenSvc:   tokenSvc,
		resetSvc:   resetSvc,
		mailer:     mailer,
	}
}

// Register creates a new player with a hashed password. The store's unique
// constraint on username is the final arbiter for concurrent registrations;
// the ExistsByUsername check only provides the friendly early answer.
func (s *playerService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Player, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("username cannot be empty: %w", apperrors.ErrValidation)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password cannot be empty: %w", apperrors.ErrValidation)
	}

	taken, err := s.playerRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("username is already taken: %w", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	player := domain.Player{
		PlayerID:      uuid.NewString(),
		Username:      req.Username,
		PasswordHash:  hash,
		Email:         req.Email,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	if err := s.playerRepo.SavePlayer(ctx, player); err != nil {
		// A concurrent registration may have won the race; the unique
		// constraint reports it as a duplicate.
		return nil, fmt.Errorf("failed to save player: %w", err)
	}
	return &player, nil
}

// Login verifies credentials and returns a signed session token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *playerService) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	if req.Username == "" {
		return "", fmt.Errorf("username cannot be empty: %w", apperrors.ErrValidation)
	}
	if req.Password == "" {
		return "", fmt.Errorf("password cannot be empty: %w", apperrors.ErrValidation)
	}

	player, err := s.playerRepo.FindPlayerByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("incorrect username or password: %w", apperrors.ErrUnauthorized)
		}
		return "", fmt.Errorf("failed to look up player: %w", err)
	}
	if !utils.CheckPasswordHash(req.Password, player.PasswordHash) {
		return "", fmt.Errorf("incorrect username or password: %w", apperrors.ErrUnauthorized)
	}

	token, _, err := s.tokenSvc.GenerateSessionToken(ctx, player.Username)
	if err != nil {
		return "", err
	}
	return token, nil
}

// GetPlayerID retrieves the ID of the player with the given username.
func (s *playerService) GetPlayerID(ctx context.Context, username string) (string, error) {
	player, err := s.playerRepo.FindPlayerByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to get player by username: %w", err)
	}
	return player.PlayerID, nil
}

// GetPlayerByID retrieves a player by ID.
func (s *playerService) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	player, err := s.playerRepo.FindPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}
	return player, nil
}

// ListPlayers retrieves a paginated list of players.
func (s *playerService) ListPlayers(ctx context.Context, limit, offset int) ([]domain.Player, error) {
	players, err := s.playerRepo.FindPlayers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// UpdatePlayer re-hashes and saves a new password for the player. The store
// clears the outstanding reset token in the same statement, which keeps the
// invariant that any successful password change invalidates it.
func (s *playerService) UpdatePlayer(ctx context.Context, playerID string, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("password cannot be empty: %w", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.playerRepo.UpdatePassword(ctx, playerID, hash, time.Now()); err != nil {
		return fmt.Errorf("failed to update player password: %w", err)
	}
	return nil
}

// ForgotPassword issues a reset token, mails it to the player's stored
// address and returns a session token for the requester. An email mismatch
// fails before any token is generated or mail is sent.
func (s *playerService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (string, error) {
	if req.Username == "" {
		return "", fmt.Errorf("username cannot be empty: %w", apperrors.ErrValidation)
	}
	if req.Email == "" {
		return "", fmt.Errorf("email cannot be empty: %w", apperrors.ErrValidation)
	}

	player, err := s.playerRepo.FindPlayerByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("incorrect username or email: %w", apperrors.ErrUnauthorized)
		}
		return "", fmt.Errorf("failed to look up player: %w", err)
	}
	if req.Email != player.Email {
		return "", fmt.Errorf("username and email don't match: %w", apperrors.ErrUnauthorized)
	}

	resetToken, err := s.resetSvc.IssueResetToken(ctx, player.Username)
	if err != nil {
		return "", err
	}

	body := "In order to reset your password, please enter the following code on the reset password page: " + resetToken
	if err := s.mailer.Send(ctx, player.Email, "Your Password Reset Token", body); err != nil {
		return "", fmt.Errorf("failed to send reset token mail: %w", apperrors.ErrDependency)
	}

	token, _, err := s.tokenSvc.GenerateSessionToken(ctx, player.Username)
	if err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword exchanges a valid reset token for a password update. A token
// that resolves no player, belongs to a different player, or has expired
// fails without mutating anything.
func (s *playerService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if req.Username == "" {
		return fmt.Errorf("username cannot be empty: %w", apperrors.ErrValidation)
	}
	if req.ResetToken == "" {
		return fmt.Errorf("reset token cannot be empty: %w", apperrors.ErrValidation)
	}
	if req.NewPassword == "" {
		return fmt.Errorf("password cannot be empty: %w", apperrors.ErrValidation)
	}

	player, err := s.resetSvc.ConsumeResetToken(ctx, req.ResetToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidToken) {
			return fmt.Errorf("username and token don't match: %w", apperrors.ErrUnauthorized)
		}
		return err
	}
	if player.Username != req.Username {
		return fmt.Errorf("username and token don't match: %w", apperrors.ErrUnauthorized)
	}

	return s.UpdatePlayer(ctx, player.PlayerID, req.NewPassword)
}
