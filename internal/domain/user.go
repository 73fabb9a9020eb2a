package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns topics.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a server-side login session referenced by the session cookie.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
