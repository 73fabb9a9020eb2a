package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// ListTopics returns all topics of userID, oldest first.
func (s *Service) ListTopics(ctx context.Context, userID uuid.UUID) ([]domain.Topic, error) {
	topics, err := s.topics.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// GetTopic returns a topic owned by userID. A topic that does not exist and
// one that belongs to someone else both yield domain.ErrNotFound.
func (s *Service) GetTopic(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	t, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	if err := domain.EnsureOwned(t, userID); err != nil {
		return nil, fmt.Errorf("topic %s: %w", topicID, err)
	}

	return t, nil
}

// GetTopicDetail returns an owned topic with its entries, most recent first.
func (s *Service) GetTopicDetail(ctx context.Context, userID, topicID uuid.UUID) (*Detail, error) {
	t, err := s.GetTopic(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByTopic(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return &Detail{Topic: t, Entries: entries}, nil
}
