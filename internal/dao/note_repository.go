package dao

import (
	"context"
	"sync"
	"time"

	"github.com/haierkeys/light-notes-service/internal/domain"
	"github.com/haierkeys/light-notes-service/internal/model"
	"github.com/haierkeys/light-notes-service/pkg/timex"

	"github.com/pkg/errors"
)

// noteRepository implements domain.NoteRepository.
type noteRepository struct {
	dao *Dao

	// The schema bootstrap runs at most once per execution context.
	// AutoMigrate only issues create-if-absent DDL, so concurrent cold
	// starts across execution contexts race safely on the database side.
	migrateOnce sync.Once
	migrateErr  error
}

// NewNoteRepository creates a NoteRepository instance.
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// EnsureSchema guarantees the notes table exists before any query.
// Invoked by every repository operation; a no-op after the first call.
func (r *noteRepository) EnsureSchema(ctx context.Context) error {
	r.migrateOnce.Do(func() {
		r.migrateErr = model.AutoMigrate(r.dao.DB().WithContext(ctx), "Note")
	})
	return errors.Wrap(r.migrateErr, "ensure schema")
}

func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

func (r *noteRepository) toModel(n *domain.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: timex.Time(n.CreatedAt),
		UpdatedAt: timex.Time(n.UpdatedAt),
	}
}

// Create inserts a note. The engine assigns the id.
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	m := r.toModel(note)
	now := timex.Now()
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := r.dao.DB().WithContext(ctx).Create(m).Error; err != nil {
		return nil, errors.Wrap(err, "create note")
	}
	return r.toDomain(m), nil
}

// ListAll returns every note ordered by id descending.
func (r *noteRepository) ListAll(ctx context.Context) ([]*domain.Note, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var ms []*model.Note
	if err := r.dao.DB().WithContext(ctx).Order("id DESC").Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "list notes")
	}

	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

// Count returns the number of notes.
func (r *noteRepository) Count(ctx context.Context) (int64, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	var count int64
	if err := r.dao.DB().WithContext(ctx).Model(&model.Note{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count notes")
	}
	return count, nil
}
