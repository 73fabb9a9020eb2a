package domain

import "github.com/google/uuid"

// Owned is implemented by resources that carry an owning user.
type Owned interface {
	OwnedBy() uuid.UUID
}

// EnsureOwned returns ErrNotFound unless res is owned by userID.
// A foreign resource is indistinguishable from a missing one.
func EnsureOwned(res Owned, userID uuid.UUID) error {
	if res == nil || res.OwnedBy() != userID {
		return ErrNotFound
	}
	return nil
}
