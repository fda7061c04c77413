package domain

import "time"

// Game is a single finished game played by a player.
type Game struct {
	GameID    string     `json:"gameID"` // Primary key (UUID)
	Username  string     `json:"username"`
	Score     int        `json:"score"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   time.Time  `json:"endTime"`
}

// ScoreRecord is one leaderboard row: a player and their score total over
// the leaderboard window.
type ScoreRecord struct {
	Username string `json:"username"`
	Score    int64  `json:"score"`
}
