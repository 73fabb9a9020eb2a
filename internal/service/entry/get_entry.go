package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// GetEntry returns an entry and its topic if the topic is owned by userID.
// A missing entry, a missing topic and a foreign topic all yield
// domain.ErrNotFound.
func (s *Service) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*Detail, error) {
	e, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	t, err := s.ownedTopic(ctx, userID, e.TopicID)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", entryID, err)
	}

	return &Detail{Entry: e, Topic: t}, nil
}
