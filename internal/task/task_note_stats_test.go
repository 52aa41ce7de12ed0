package task

import (
	"context"
	"testing"

	"github.com/haierkeys/light-notes-service/internal/domain"
	"github.com/haierkeys/light-notes-service/internal/metrics"
	"github.com/haierkeys/light-notes-service/internal/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countRepo struct {
	domain.NoteRepository
	count int64
}

func (r *countRepo) Count(ctx context.Context) (int64, error) {
	return r.count, nil
}

func TestNoteStatsTaskRefresh(t *testing.T) {
	svc := service.NewNoteService(&countRepo{count: 7}, zap.NewNop())

	task, err := NewNoteStatsTask("*/5 * * * *", svc, zap.NewNop())
	assert.NoError(t, err)
	assert.Equal(t, "NoteStats", task.Name())
	assert.True(t, task.IsStartupRun())

	// cancelled context: Run refreshes once and returns
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, task.Run(ctx))

	assert.Equal(t, float64(7), testutil.ToFloat64(metrics.NotesTotal))
}

func TestNoteStatsTaskBadCron(t *testing.T) {
	svc := service.NewNoteService(&countRepo{}, zap.NewNop())

	_, err := NewNoteStatsTask("not a cron expr", svc, zap.NewNop())
	assert.Error(t, err)
}
