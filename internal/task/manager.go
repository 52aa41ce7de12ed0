package task

import (
	"github.com/haierkeys/light-notes-service/internal/app"
	"github.com/haierkeys/light-notes-service/pkg/safe_close"

	"go.uber.org/zap"
)

// Manager creates and owns all background tasks.
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger
	app       *app.App
}

// NewManager creates the task manager.
func NewManager(logger *zap.Logger, sc *safe_close.SafeClose, appContainer *app.App) *Manager {
	return &Manager{
		scheduler: NewScheduler(logger, sc),
		logger:    logger,
		app:       appContainer,
	}
}

// RegisterTasks registers all tasks.
func (m *Manager) RegisterTasks() error {
	statsTask, err := NewNoteStatsTask(m.app.Config().App.NoteStatsCron, m.app.NoteService, m.logger)
	if err != nil {
		m.logger.Warn("failed to create note stats task", zap.Error(err))
		return err
	}
	m.scheduler.AddTask(statsTask)

	return nil
}

// Start starts all registered tasks.
func (m *Manager) Start() {
	m.scheduler.Start()
}
