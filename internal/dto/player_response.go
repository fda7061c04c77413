package dto

import (
	"github.com/gamescorehq/gamescore_app/internal/core/domain"
)

// PlayerResponse is the caller-facing view of a player. The password hash and
// reset token never leave the service.
type PlayerResponse struct {
	PlayerID string `json:"playerID"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ToPlayerResponse converts a domain.Player to its response DTO.
func ToPlayerResponse(player *domain.Player) PlayerResponse {
	return PlayerResponse{
		PlayerID: player.PlayerID,
		Username: player.Username,
		Email:    player.Email,
	}
}

// ListPlayersResponse wraps the list of players.
type ListPlayersResponse struct {
	Players []PlayerResponse `json:"players"`
}

// ToListPlayersResponse converts a slice of domain.Player to ListPlayersResponse.
func ToListPlayersResponse(players []domain.Player) ListPlayersResponse {
	playerResponses := make([]PlayerResponse, len(players))
	for i, player := range players {
		playerResponses[i] = ToPlayerResponse(&player)
	}
	return ListPlayersResponse{
		Players: playerResponses,
	}
}

// PlayerIDResponse wraps a bare player ID lookup result.
type PlayerIDResponse struct {
	PlayerID string `json:"playerID"`
}
