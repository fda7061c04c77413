package services

import (
	"context"
	"time"

	"github.com/gamescorehq/gamescore_app/internal/core/domain"
)

// TokenSvcFacade is the session token codec: it signs and verifies the
// time-bound tokens that prove a prior successful login.
type TokenSvcFacade interface {
	// GenerateSessionToken creates a signed session token for the given
	// username and returns it with its expiry time.
	GenerateSessionToken(ctx context.Context, username string) (string, time.Time, error)

	// ResolveIdentity parses and verifies a session token and returns the
	// identity it carries. Fails with apperrors.ErrInvalidToken when the
	// signature is bad, the structure is malformed or the token expired.
	ResolveIdentity(tokenString string) (domain.Identity, error)

	// ValidateSessionToken reports whether the token verifies, is unexpired
	// and carries the expected subject.
	ValidateSessionToken(tokenString string, expectedSubject string) bool
}

// ResetTokenSvcFacade issues and consumes the single-use random tokens that
// prove ownership of a forgot-password request.
type ResetTokenSvcFacade interface {
	// IssueResetToken generates a random token, persists it against the
	// player and returns it. Fails with apperrors.ErrNotFound when the
	// username does not resolve.
	IssueResetToken(ctx context.Context, username string) (string, error)

	// ConsumeResetToken resolves the player owning this exact token value.
	// It does not clear the token; clearing happens as part of the
	// subsequent password update.
	ConsumeResetToken(ctx context.Context, token string) (*domain.Player, error)
}
