package domain

import "time"

// Player is the identity record of the score service.
// PasswordHash always holds a bcrypt hash, never plaintext.
type Player struct {
	PlayerID     string `json:"playerID"` // Primary key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`

	// One outstanding reset token per player; issuing a new one overwrites
	// the previous value. Cleared by any successful password update.
	ResetToken          *string    `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
