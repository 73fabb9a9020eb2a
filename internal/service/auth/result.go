package auth

import (
	"time"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User         *domain.User
	SessionToken string
	ExpiresAt    time.Time
}
