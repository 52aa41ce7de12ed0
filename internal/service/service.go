// Package service implements the business layer.
package service

import (
	"context"

	"github.com/haierkeys/light-notes-service/internal/domain"
)

// NoteService notes business interface
type NoteService interface {
	// List returns every note, newest first
	List(ctx context.Context) ([]*domain.Note, error)

	// Create validates and inserts a note.
	// Returns domain.ErrMissingFields when title or content is empty.
	Create(ctx context.Context, title, content string) error

	// Count returns the number of notes
	Count(ctx context.Context) (int64, error)
}
