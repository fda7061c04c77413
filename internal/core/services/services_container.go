package services

import (
	portsrepo "github.com/gamescorehq/gamescore_app/internal/core/ports/repositories"
	portssvc "github.com/gamescorehq/gamescore_app/internal/core/ports/services"
	"github.com/gamescorehq/gamescore_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.MailSender) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Token and reset-token services first since the player service
	// depends on both.
	container.Token = NewTokenService(cfg)
	container.ResetToken = NewResetTokenService(cfg, repos.PlayerRepo)

	container.Player = NewPlayerService(repos.PlayerRepo, container.Token, container.ResetToken, mailer)
	container.Game = NewGameService(repos.GameRepo, repos.PlayerRepo)

	return container
}

// Compile-time interface implementation checks
var (
	_ portssvc.PlayerSvcFacade     = (*playerService)(nil)
	_ portssvc.TokenSvcFacade      = (*tokenService)(nil)
	_ portssvc.ResetTokenSvcFacade = (*resetTokenService)(nil)
	_ portssvc.GameSvcFacade       = (*gameService)(nil)
)
