package dto

import (
	"time"

	"github.com/gamescorehq/gamescore_app/internal/core/domain"
)

// AddGameRequest records a finished game for a player.
type AddGameRequest struct {
	PlayerID string `json:"playerID" binding:"required"`
	Score    int    `json:"score" binding:"min=0"`
}

// LeaderboardParams defines query parameters for leaderboard endpoints.
type LeaderboardParams struct {
	Limit int `form:"limit,default=10"`
}

// LeaderboardEntry is one row of a leaderboard response.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

// LeaderboardResponse wraps a leaderboard query result.
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// ToLeaderboardResponse converts score records to the response DTO.
func ToLeaderboardResponse(records []domain.ScoreRecord) LeaderboardResponse {
	entries := make([]LeaderboardEntry, len(records))
	for i, record := range records {
		entries[i] = LeaderboardEntry{
			Username: record.Username,
			Score:    record.Score,
		}
	}
	return LeaderboardResponse{
		Entries: entries,
	}
}

// GameResponse is the caller-facing view of a game record.
type GameResponse struct {
	GameID   string    `json:"gameID"`
	Username string    `json:"username"`
	Score    int       `json:"score"`
	EndTime  time.Time `json:"endTime"`
}

// ListGamesResponse wraps a player's game history.
type ListGamesResponse struct {
	Games []GameResponse `json:"games"`
}

// ToListGamesResponse converts domain games to the response DTO.
func ToListGamesResponse(games []domain.Game) ListGamesResponse {
	responses := make([]GameResponse, len(games))
	for i, game := range games {
		responses[i] = GameResponse{
			GameID:   game.GameID,
			Username: game.Username,
			Score:    game.Score,
			EndTime:  game.EndTime,
		}
	}
	return ListGamesResponse{
		Games: responses,
	}
}
