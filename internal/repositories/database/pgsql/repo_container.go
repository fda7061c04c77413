package pgsql

import (
	portsrepo "github.com/gamescorehq/gamescore_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	playerRepo := newPgxPlayerRepository(dbPool)
	gameRepo := newPgxGameRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PlayerRepo: playerRepo,
		GameRepo:   gameRepo,
	}
}
