package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/eisenhq/eisen-api/internal/domain"
	"github.com/eisenhq/eisen-api/internal/platform/logger"
	"github.com/eisenhq/eisen-api/internal/store"
)

// taskColumns is the canonical column list scanned into a domain.Task.
const taskColumns = `id, title, description, urgent, important, quadrant,
		justification, assignee, status, reminder_at, origin,
		created_at, updated_at, completed_at`

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// scanTask scans one row into a domain.Task. The row must carry the
// taskColumns in order.
func scanTask(row interface{ Scan(dest ...any) error }) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Urgent,
		&task.Important,
		&task.Quadrant,
		&task.Justification,
		&task.Assignee,
		&task.Status,
		&task.ReminderAt,
		&task.Origin,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List implements store.TaskStore.List
// It retrieves all tasks ordered newest first, optionally filtered by
// exact status match.
func (s *PostgresTaskStore) List(
	ctx context.Context,
	status *domain.TaskStatus,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + ` FROM tasks`
	var args []any
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	return s.queryTasks(ctx, log, query, args...)
}

// ListByQuadrant implements store.TaskStore.ListByQuadrant
func (s *PostgresTaskStore) ListByQuadrant(
	ctx context.Context,
	quadrant domain.Quadrant,
	status *domain.TaskStatus,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE quadrant = $1`
	args := []any{quadrant}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	return s.queryTasks(ctx, log, query, args...)
}

// queryTasks runs a multi-row task query and scans the result set.
func (s *PostgresTaskStore) queryTasks(
	ctx context.Context,
	log *slog.Logger,
	query string,
	args ...any,
) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Return empty slice instead of nil if no tasks found
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	log.Debug("tasks retrieved", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	return task, nil
}

// Create implements store.TaskStore.Create
// The database assigns the ID and both timestamps; they are written
// back into the given task.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO tasks (title, description, urgent, important, quadrant,
			justification, assignee, status, reminder_at, origin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Urgent,
		task.Important,
		task.Quadrant,
		task.Justification,
		task.Assignee,
		task.Status,
		task.ReminderAt,
		task.Origin,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return store.NewStoreError("task", "create", "failed to insert task", MapError(err))
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.Int("quadrant", int(task.Quadrant)))
	return nil
}

// Update implements store.TaskStore.Update
// It replaces the mutable columns of the row identified by task.ID and
// refreshes updated_at. Returns store.ErrTaskNotFound if no row matches.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return err
	}

	query := `
		UPDATE tasks
		SET title = $1,
			description = $2,
			urgent = $3,
			important = $4,
			quadrant = $5,
			justification = $6,
			assignee = $7,
			status = $8,
			reminder_at = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Urgent,
		task.Important,
		task.Quadrant,
		task.Justification,
		task.Assignee,
		task.Status,
		task.ReminderAt,
		task.ID,
	).Scan(&task.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for update", slog.Int64("task_id", task.ID))
			return store.ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return store.NewStoreError("task", "update", "failed to persist changes", MapError(err))
	}

	log.Info("task updated",
		slog.Int64("task_id", task.ID),
		slog.Int("quadrant", int(task.Quadrant)),
		slog.String("status", string(task.Status)))
	return nil
}

// Complete implements store.TaskStore.Complete
// It stamps completed_at and updated_at to the current time in a single
// UPDATE. Repeated calls re-stamp completed_at; the quadrant and flags
// are left untouched.
func (s *PostgresTaskStore) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET status = $1,
			completed_at = NOW(),
			updated_at = NOW()
		WHERE id = $2
		RETURNING ` + taskColumns

	task, err := scanTask(s.db.QueryRowContext(ctx, query, domain.TaskStatusCompleted, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for complete", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to complete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	log.Info("task completed", slog.Int64("task_id", id))
	return task, nil
}

// Delete implements store.TaskStore.Delete
// Hard delete; the removed row is returned for confirmation.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tasks WHERE id = $1 RETURNING ` + taskColumns

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for delete", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return task, nil
}
