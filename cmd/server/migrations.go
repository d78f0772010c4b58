package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/eisenhq/eisen-api/internal/config"
)

// slogGooseLogger adapts goose's logger interface onto slog so
// migration output lands in the same structured stream as everything
// else.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "component", "migrations")
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...), "component", "migrations")
}

// runMigrations executes the given goose command (up, down, status)
// against the configured database using the SQL files in migrationsDir.
func runMigrations(cfg *config.Config, command, migrationsDir string) error {
	// A correlation ID ties together all log lines of one migration run.
	correlationID := uuid.New().String()
	migrationLogger := slog.Default().With(
		"correlation_id", correlationID,
		"component", "migrations",
		"command", command,
	)

	startTime := time.Now()
	migrationLogger.Info("starting migration operation",
		"operation", fmt.Sprintf("goose %s", command),
		"dir", migrationsDir)

	goose.SetLogger(&slogGooseLogger{})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		migrationLogger.Error("failed to open database connection", "error", err)
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			migrationLogger.Error("error closing database connection", "error", err)
		}
	}()

	switch command {
	case "up":
		err = goose.Up(db, migrationsDir)
	case "down":
		err = goose.Down(db, migrationsDir)
	case "status":
		err = goose.Status(db, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command: %q (want up, down, or status)", command)
	}

	duration := time.Since(startTime)
	if err != nil {
		migrationLogger.Error("migration operation failed",
			"error", err,
			"duration_ms", duration.Milliseconds())
		return fmt.Errorf("goose %s failed: %w", command, err)
	}

	migrationLogger.Info("migration operation completed",
		"duration_ms", duration.Milliseconds())
	return nil
}
