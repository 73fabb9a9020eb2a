package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps login sessions in Redis. Each session key carries a TTL
// matching its expiry, so Redis evicts expired sessions on its own.
type SessionStore struct {
	client *goredis.Client
	now    func() time.Time
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

type sessionRecord struct {
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

// Create stores a session until its expiry.
func (s *SessionStore) Create(ctx context.Context, sess *domain.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("session %s: already expired: %w", sess.ID, domain.ErrValidation)
	}

	data, err := json.Marshal(sessionRecord{
		UserID:    sess.UserID,
		ExpiresAt: sess.ExpiresAt,
		CreatedAt: sess.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("session %s: marshal: %w", sess.ID, err)
	}

	if err := s.client.Set(ctx, sessionKey(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("session %s: set: %w", sess.ID, err)
	}

	return nil
}

// GetByID returns a session, or domain.ErrNotFound once the key is gone.
func (s *SessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("session %s: get: %w", id, err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("session %s: unmarshal: %w", id, err)
	}

	return &domain.Session{
		ID:        id,
		UserID:    rec.UserID,
		ExpiresAt: rec.ExpiresAt,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("session %s: del: %w", id, err)
	}
	return nil
}

// DeleteExpired is a no-op: key TTLs already evict expired sessions.
func (s *SessionStore) DeleteExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}
