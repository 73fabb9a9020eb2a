// Package auth implements account registration, login and server-side
// session management for the session cookie.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/auth"
	"github.com/heartmarshall/learning-log/internal/config"
	"github.com/heartmarshall/learning-log/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// sessionStore is implemented by the postgres session repo and the redis
// session store.
type sessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// jwtManager defines the session token interface needed by auth service.
type jwtManager interface {
	GenerateSessionToken(sessionID, userID uuid.UUID, expiresAt time.Time) (string, error)
	ValidateSessionToken(token string) (auth.SessionClaims, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionStore
	jwt      jwtManager
	cfg      config.AuthConfig
	now      func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionStore,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		jwt:      jwt,
		cfg:      cfg,
		now:      time.Now,
	}
}

// startSession persists a new session for user and signs its cookie token.
func (s *Service) startSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	now := s.now().UTC().Truncate(time.Microsecond)
	sess := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	token, err := s.jwt.GenerateSessionToken(sess.ID, user.ID, sess.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	return &AuthResult{
		User:         user,
		SessionToken: token,
		ExpiresAt:    sess.ExpiresAt,
	}, nil
}
