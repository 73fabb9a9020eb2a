package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// Authenticate resolves a session token to the user id it belongs to.
// Returns ErrUnauthorized for a bad signature, an unknown or expired session,
// or a session that belongs to another user.
func (s *Service) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := s.jwt.ValidateSessionToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}

	sess, err := s.sessions.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.ErrUnauthorized
		}
		return uuid.Nil, fmt.Errorf("auth.Authenticate get session: %w", err)
	}

	if sess.UserID != claims.UserID || sess.IsExpired(s.now()) {
		return uuid.Nil, domain.ErrUnauthorized
	}

	return sess.UserID, nil
}

// Logout revokes the session named by token. An invalid token has no
// session to revoke and is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.ValidateSessionToken(token)
	if err != nil {
		return nil
	}

	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", claims.UserID.String()))
	return nil
}

// CleanupExpiredSessions deletes expired sessions and returns how many were
// removed.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int, error) {
	n, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}
	return n, nil
}
