package models

import "time"

// Session maps an opaque bearer token to a user for its TTL window.
// The token is the whole secret; nothing derivable is stored with it.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
