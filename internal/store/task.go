package store

import (
	"context"

	"github.com/eisenhq/eisen-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// List retrieves all tasks ordered by created_at descending,
	// optionally filtered by exact status match.
	// Returns an empty slice if no tasks match.
	List(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error)

	// ListByQuadrant retrieves tasks in the given quadrant ordered by
	// created_at descending, optionally filtered by exact status match.
	ListByQuadrant(
		ctx context.Context,
		quadrant domain.Quadrant,
		status *domain.TaskStatus,
	) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create saves a new task. The store assigns the ID and the
	// created_at/updated_at timestamps and writes them back into task.
	Create(ctx context.Context, task *domain.Task) error

	// Update replaces the mutable columns of an existing task and
	// refreshes updated_at, writing the new timestamp back into task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Complete marks the task completed, stamping completed_at and
	// updated_at to the current time, and returns the updated row.
	// Calling it on an already-completed task re-stamps completed_at.
	// Returns ErrTaskNotFound if the task does not exist.
	Complete(ctx context.Context, id int64) (*domain.Task, error)

	// Delete permanently removes a task and returns the deleted row.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) (*domain.Task, error)
}
