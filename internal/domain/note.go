// Package domain defines domain models and repository interfaces.
package domain

import (
	"errors"
	"time"
)

// ErrMissingFields is returned when a note is created without a title
// or content. Every persisted note has both.
var ErrMissingFields = errors.New("missing fields")

// Note domain model. The id is assigned by the storage engine on
// insert, monotonically increasing, never reused.
type Note struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Valid reports whether the note satisfies the non-empty invariant.
func (n *Note) Valid() bool {
	return n.Title != "" && n.Content != ""
}
