// Package task schedules the service's background tasks.
package task

import (
	"context"
	"time"

	"github.com/haierkeys/light-notes-service/pkg/safe_close"

	"go.uber.org/zap"
)

// Task defines the task interface.
type Task interface {
	Name() string                  // task name
	Run(ctx context.Context) error // execute the task
	LoopInterval() time.Duration   // loop interval, 0 means the task drives itself
	IsStartupRun() bool            // whether to run once immediately
}

// Scheduler task scheduler
type Scheduler struct {
	logger *zap.Logger
	tasks  []Task
	sc     *safe_close.SafeClose
}

// NewScheduler creates a task scheduler.
func NewScheduler(logger *zap.Logger, sc *safe_close.SafeClose) *Scheduler {
	return &Scheduler{
		logger: logger,
		tasks:  make([]Task, 0),
		sc:     sc,
	}
}

// AddTask adds a task.
func (s *Scheduler) AddTask(task Task) {
	s.tasks = append(s.tasks, task)
}

// Start starts all tasks.
func (s *Scheduler) Start() {
	if len(s.tasks) == 0 {
		s.logger.Info("no tasks to schedule")
		return
	}

	s.logger.Info("tasks starting", zap.Int("count", len(s.tasks)))

	for _, task := range s.tasks {
		s.startTask(task)
	}
}

// startTask starts a single task.
func (s *Scheduler) startTask(task Task) {

	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			<-closeSignal
			cancel()
		}()

		if task.IsStartupRun() {
			s.logger.Info("task running", zap.String("name", task.Name()), zap.Bool("startupRun", true))
			s.runOnce(ctx, task, "startupRun")
		}

		if task.LoopInterval() <= 0 {
			<-closeSignal
			s.logger.Info("task stopped", zap.String("name", task.Name()))
			return
		}

		ticker := time.NewTicker(task.LoopInterval())
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.logger.Info("task running", zap.String("name", task.Name()), zap.Bool("loopRun", true))
				s.runOnce(ctx, task, "loopRun")
			case <-closeSignal:
				s.logger.Info("task stopped", zap.String("name", task.Name()), zap.Bool("loopRun", true))
				return
			}
		}
	})
}

func (s *Scheduler) runOnce(ctx context.Context, task Task, kind string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task panic",
				zap.String("name", task.Name()),
				zap.String("type", kind),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()
	if err := task.Run(ctx); err != nil {
		s.logger.Error("task running error",
			zap.String("name", task.Name()),
			zap.String("type", kind),
			zap.Error(err))
	}
}
