package app

import (
	"context"

	"github.com/haierkeys/light-notes-service/internal/dao"
	"github.com/haierkeys/light-notes-service/internal/domain"
	"github.com/haierkeys/light-notes-service/internal/service"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App application container wrapping all dependencies and services
type App struct {
	// injected infrastructure
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// repository layer
	NoteRepo domain.NoteRepository

	// service layer
	NoteService service.NoteService
}

// NewApp creates the application container.
// Initializes every dependency and performs the injection.
// cfg: application config (required)
// logger: zap logger (required)
// db: database connection (required)
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if db == nil {
		return nil, errors.New("database is required")
	}

	a := &App{
		config: cfg,
		logger: logger,
		DB:     db,
	}

	a.Dao = dao.New(db)
	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.NoteService = service.NewNoteService(a.NoteRepo, logger)

	return a, nil
}

// Config returns the application config.
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger returns the logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Shutdown releases the container's resources. The context bounds how
// long shutdown may take.
func (a *App) Shutdown(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		sqlDB, err := a.DB.DB()
		if err != nil {
			done <- errors.Wrap(err, "get sql.DB")
			return
		}
		done <- sqlDB.Close()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
