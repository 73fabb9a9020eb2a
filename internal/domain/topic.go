package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a user-owned subject that groups journal entries.
type Topic struct {
	ID        uuid.UUID
	Text      string
	DateAdded time.Time
	OwnerID   uuid.UUID
}

// OwnedBy implements Owned.
func (t *Topic) OwnedBy() uuid.UUID {
	if t == nil {
		return uuid.Nil
	}
	return t.OwnerID
}

// String returns the topic text.
func (t *Topic) String() string { return t.Text }
