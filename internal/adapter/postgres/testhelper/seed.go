package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + uniqueSuffix(),
		PasswordHash: "$2a$04$not-a-real-hash",
		CreatedAt:    now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTopic creates a topic owned by ownerID.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, text string) domain.Topic {
	t.Helper()

	topic := domain.Topic{
		ID:        uuid.New(),
		Text:      text,
		DateAdded: now(),
		OwnerID:   ownerID,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topics (id, text, date_added, owner_id) VALUES ($1, $2, $3, $4)`,
		topic.ID, topic.Text, topic.DateAdded, topic.OwnerID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return topic
}

// SeedEntry creates an entry under topicID dated at.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, topicID uuid.UUID, text string, at time.Time) domain.Entry {
	t.Helper()

	entry := domain.Entry{
		ID:        uuid.New(),
		TopicID:   topicID,
		Text:      text,
		DateAdded: at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO entries (id, text, date_added, topic_id) VALUES ($1, $2, $3, $4)`,
		entry.ID, entry.Text, entry.DateAdded, entry.TopicID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return entry
}
