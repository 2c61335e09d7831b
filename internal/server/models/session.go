package models

import "time"

// Session is the single persisted authentication artifact: a server-side
// row with a fixed TTL. The browser holds its id inside a signed cookie.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session TTL has elapsed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
