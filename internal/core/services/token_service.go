package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gamescorehq/gamescore_app/internal/apperrors"
	"github.com/gamescorehq/gamescore_app/internal/core/domain"
	portssvc "github.com/gamescorehq/gamescore_app/internal/core/ports/services"
	"github.com/gamescorehq/gamescore_app/internal/platform/config"
	"github.com/gamescorehq/gamescore_app/internal/utils"
)

// tokenService implements the TokenSvcFacade: it signs and verifies the
// session tokens carried on every authenticated request. The signing secret
// and TTL come from configuration and never change after construction.
type tokenService struct {
	secret string
	issuer string
	expiry time.Duration
}

// NewTokenService creates a new instance of tokenService. An empty signing
// secret is a programming invariant violation, not an expected condition.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	if cfg.JWTSecret == "" {
		panic("token service requires a signing secret")
	}
	return &tokenService{
		secret: cfg.JWTSecret,
		issuer: cfg.JWTIssuer,
		expiry: cfg.JWTExpiryDuration,
	}
}

// GenerateSessionToken creates a signed session token carrying the username
// as subject, issued now and expiring after the configured TTL.
func (s *tokenService) GenerateSessionToken(ctx context.Context, username string) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.expiry)

	token, err := utils.GenerateJWT(username, s.secret, s.expiry, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expiryTime, nil
}

// ResolveIdentity parses and verifies a session token. The returned error
// wraps both apperrors.ErrInvalidToken and the underlying jwt error, so
// callers can distinguish expiry from other failures with errors.Is.
func (s *tokenService) ResolveIdentity(tokenString string) (domain.Identity, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.secret)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("%w: subject missing", apperrors.ErrInvalidToken)
	}

	identity := domain.Identity{Username: claims.Subject}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

// ValidateSessionToken reports whether the token verifies, is unexpired and
// carries the expected subject. Expiry is enforced by the parser.
func (s *tokenService) ValidateSessionToken(tokenString string, expectedSubject string) bool {
	identity, err := s.ResolveIdentity(tokenString)
	if err != nil {
		return false
	}
	return identity.Username == expectedSubject
}
