package service

import (
	"context"
	"testing"

	"github.com/haierkeys/light-notes-service/internal/domain"

	"go.uber.org/zap"
)

type mockNoteRepo struct {
	domain.NoteRepository
	created []*domain.Note
}

func (m *mockNoteRepo) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	note.ID = int64(len(m.created) + 1)
	m.created = append(m.created, note)
	return note, nil
}

func (m *mockNoteRepo) ListAll(ctx context.Context) ([]*domain.Note, error) {
	notes := make([]*domain.Note, 0, len(m.created))
	for i := len(m.created) - 1; i >= 0; i-- {
		notes = append(notes, m.created[i])
	}
	return notes, nil
}

func (m *mockNoteRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.created)), nil
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		title       string
		content     string
		wantErr     error
		wantCreated int
	}{
		{
			name:        "valid pair - created",
			title:       "shopping",
			content:     "milk and eggs",
			wantErr:     nil,
			wantCreated: 1,
		},
		{
			name:        "empty title - rejected",
			title:       "",
			content:     "milk and eggs",
			wantErr:     domain.ErrMissingFields,
			wantCreated: 0,
		},
		{
			name:        "empty content - rejected",
			title:       "shopping",
			content:     "",
			wantErr:     domain.ErrMissingFields,
			wantCreated: 0,
		},
		{
			name:        "both empty - rejected",
			title:       "",
			content:     "",
			wantErr:     domain.ErrMissingFields,
			wantCreated: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockNoteRepo{}
			svc := NewNoteService(repo, zap.NewNop())

			err := svc.Create(ctx, tt.title, tt.content)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("Create err = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Create failed: %v", err)
			}

			if len(repo.created) != tt.wantCreated {
				t.Errorf("created %d notes, want %d", len(repo.created), tt.wantCreated)
			}
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := &mockNoteRepo{}
	svc := NewNoteService(repo, zap.NewNop())

	for _, title := range []string{"A", "B", "C"} {
		if err := svc.Create(ctx, title, "content "+title); err != nil {
			t.Fatalf("Create %s failed: %v", title, err)
		}
	}

	notes, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"C", "B", "A"}
	if len(notes) != len(want) {
		t.Fatalf("List returned %d notes, want %d", len(notes), len(want))
	}
	for i, title := range want {
		if notes[i].Title != title {
			t.Errorf("notes[%d].Title = %q, want %q", i, notes[i].Title, title)
		}
	}
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	repo := &mockNoteRepo{}
	svc := NewNoteService(repo, zap.NewNop())

	count, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Count = %d, want 0", count)
	}

	if err := svc.Create(ctx, "t", "c"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	count, err = svc.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}
