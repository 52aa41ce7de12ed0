package dao

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/haierkeys/light-notes-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) domain.NoteRepository {
	t.Helper()

	db, err := NewDBEngineWithConfig(DatabaseConfig{
		Type:         "sqlite",
		Path:         filepath.Join(t.TempDir(), "db.sqlite3"),
		MaxIdleConns: 2,
		MaxOpenConns: 2,
	}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	return NewNoteRepository(New(db))
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		assert.NoError(t, repo.EnsureSchema(ctx))
	}

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCreate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	note, err := repo.Create(ctx, &domain.Note{
		Title:   "testTitle",
		Content: "testContent",
	})

	assert.NoError(t, err)
	assert.Equal(t, "testTitle", note.Title)
	assert.Equal(t, "testContent", note.Content)
	assert.Greater(t, note.ID, int64(0))

	// ids are engine assigned and monotonically increasing
	second, err := repo.Create(ctx, &domain.Note{
		Title:   "secondTitle",
		Content: "secondContent",
	})
	assert.NoError(t, err)
	assert.Greater(t, second.ID, note.ID)
}

func TestListAllOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		_, err := repo.Create(ctx, &domain.Note{Title: title, Content: "content " + title})
		assert.NoError(t, err)
	}

	notes, err := repo.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, notes, 3)
	assert.Equal(t, "C", notes[0].Title)
	assert.Equal(t, "B", notes[1].Title)
	assert.Equal(t, "A", notes[2].Title)
}

func TestListAllEmpty(t *testing.T) {
	repo := newTestRepo(t)

	notes, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Len(t, notes, 0)
}

func TestCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &domain.Note{Title: "t", Content: "c"})
		assert.NoError(t, err)
	}

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
