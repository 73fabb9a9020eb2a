package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a dated note under a topic. It has no owner of its own:
// ownership is always resolved through the parent topic.
type Entry struct {
	ID        uuid.UUID
	TopicID   uuid.UUID
	Text      string
	DateAdded time.Time
}

const entryPreviewLen = 50

// Preview returns the first 50 characters of the text, followed by an
// ellipsis when the text is longer.
func (e *Entry) Preview() string {
	r := []rune(e.Text)
	if len(r) <= entryPreviewLen {
		return e.Text
	}
	return string(r[:entryPreviewLen]) + "..."
}
