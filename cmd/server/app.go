package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/eisenhq/eisen-api/internal/config"
	"github.com/eisenhq/eisen-api/internal/platform/postgres"
	"github.com/eisenhq/eisen-api/internal/service"
	"github.com/eisenhq/eisen-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore  store.TaskStore
	statsStore store.StatsStore

	taskService service.TaskService
}

// newApplication creates a new application instance with all
// dependencies initialized. It accepts the core dependencies that must
// be established before application wiring: configuration, logger, and
// an open database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.statsStore = postgres.NewPostgresStatsStore(db, logger)

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.statsStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("application initialized")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters
// problems while running.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
