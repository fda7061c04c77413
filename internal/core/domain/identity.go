package domain

import "time"

// Identity is the authenticated principal resolved from a session token and
// attached to the request context by the auth middleware.
type Identity struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
