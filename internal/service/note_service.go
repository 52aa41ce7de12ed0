package service

import (
	"context"

	"github.com/haierkeys/light-notes-service/internal/domain"
	"github.com/haierkeys/light-notes-service/internal/metrics"
	"github.com/haierkeys/light-notes-service/pkg/logger"

	"go.uber.org/zap"
)

// noteService implements NoteService.
type noteService struct {
	noteRepo domain.NoteRepository
	logger   *zap.Logger
}

// NewNoteService creates a NoteService instance.
func NewNoteService(noteRepo domain.NoteRepository, lg *zap.Logger) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		logger:   lg,
	}
}

func (s *noteService) List(ctx context.Context) ([]*domain.Note, error) {
	return s.noteRepo.ListAll(ctx)
}

func (s *noteService) Create(ctx context.Context, title, content string) error {
	note := &domain.Note{
		Title:   title,
		Content: content,
	}
	if !note.Valid() {
		return domain.ErrMissingFields
	}

	created, err := s.noteRepo.Create(ctx, note)
	if err != nil {
		return err
	}

	metrics.NotesCreatedTotal.Inc()
	s.logger.Info("note created", zap.Int64(logger.FieldNoteID, created.ID))
	return nil
}

func (s *noteService) Count(ctx context.Context) (int64, error) {
	return s.noteRepo.Count(ctx)
}
