package domain

import "context"

// NoteRepository notes storage interface
type NoteRepository interface {
	// EnsureSchema idempotently guarantees the notes table exists.
	// Safe to call concurrently and repeatedly.
	EnsureSchema(ctx context.Context) error

	// Create inserts a note, the engine assigns the id
	Create(ctx context.Context, note *Note) (*Note, error)

	// ListAll returns every note, newest first (id descending)
	ListAll(ctx context.Context) ([]*Note, error)

	// Count returns the number of notes
	Count(ctx context.Context) (int64, error)
}
