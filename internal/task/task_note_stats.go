package task

import (
	"context"
	"time"

	"github.com/haierkeys/light-notes-service/internal/metrics"
	"github.com/haierkeys/light-notes-service/internal/service"
	pkglogger "github.com/haierkeys/light-notes-service/pkg/logger"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// NoteStatsTask refreshes the notes_total gauge on a cron schedule.
type NoteStatsTask struct {
	schedule cron.Schedule
	noteSvc  service.NoteService
	logger   *zap.Logger
}

// NewNoteStatsTask parses the cron expression and builds the task.
func NewNoteStatsTask(expr string, noteSvc service.NoteService, logger *zap.Logger) (*NoteStatsTask, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "parse cron expression %q", expr)
	}
	return &NoteStatsTask{
		schedule: schedule,
		noteSvc:  noteSvc,
		logger:   logger,
	}, nil
}

// Name returns the task name.
func (t *NoteStatsTask) Name() string {
	return "NoteStats"
}

// LoopInterval returns 0, the cron schedule drives the loop inside Run.
func (t *NoteStatsTask) LoopInterval() time.Duration {
	return 0
}

// IsStartupRun returns true so the gauge is populated right after start.
func (t *NoteStatsTask) IsStartupRun() bool {
	return true
}

// Run refreshes the gauge once, then follows the cron schedule until
// the context is cancelled.
func (t *NoteStatsTask) Run(ctx context.Context) error {
	t.refresh(ctx)

	for {
		next := t.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-timer.C:
			t.refresh(ctx)
		case <-ctx.Done():
			timer.Stop()
			return nil
		}
	}
}

func (t *NoteStatsTask) refresh(ctx context.Context) {
	count, err := t.noteSvc.Count(ctx)
	if err != nil {
		t.logger.Error("note stats refresh failed", zap.Error(err))
		return
	}
	metrics.NotesTotal.Set(float64(count))
	t.logger.Debug("note stats refreshed", zap.Int64(pkglogger.FieldCount, count))
}
