package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/eisenhq/eisen-api/internal/domain"
	"github.com/eisenhq/eisen-api/internal/platform/logger"
	"github.com/eisenhq/eisen-api/internal/store"
)

// CreateTaskParams carries the caller-supplied fields for task
// creation. Quadrant is deliberately absent; it is always derived.
type CreateTaskParams struct {
	Title         string
	Description   *string
	Urgent        bool
	Important     bool
	Justification *string
	Assignee      *string
	ReminderAt    *time.Time
	Origin        string
}

// UpdateTaskParams carries the partial-update payload. Every field is
// tri-state: absent fields keep the stored value, explicit null clears
// Assignee and ReminderAt (and is treated like absent everywhere else,
// matching the COALESCE semantics of the persisted update).
type UpdateTaskParams struct {
	Title         domain.Optional[string]
	Description   domain.Optional[string]
	Urgent        domain.Optional[bool]
	Important     domain.Optional[bool]
	Justification domain.Optional[string]
	Assignee      domain.Optional[string]
	Status        domain.Optional[domain.TaskStatus]
	ReminderAt    domain.Optional[time.Time]
}

// TaskService provides task CRUD and dashboard aggregate operations.
type TaskService interface {
	// List returns all tasks newest first, optionally filtered by status.
	List(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error)

	// ListByQuadrant returns the tasks in one quadrant newest first,
	// optionally filtered by status.
	ListByQuadrant(
		ctx context.Context,
		quadrant domain.Quadrant,
		status *domain.TaskStatus,
	) ([]*domain.Task, error)

	// Get retrieves a single task by ID.
	Get(ctx context.Context, id int64) (*domain.Task, error)

	// Create validates and persists a new task, deriving its quadrant
	// from the urgent/important pair.
	Create(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// Update applies a partial update, recomputing the quadrant
	// whenever either flag is part of the payload.
	Update(ctx context.Context, id int64, params UpdateTaskParams) (*domain.Task, error)

	// Complete marks a task completed, stamping completed_at to now.
	Complete(ctx context.Context, id int64) (*domain.Task, error)

	// Delete removes a task permanently and returns the deleted record.
	Delete(ctx context.Context, id int64) (*domain.Task, error)

	// Stats computes the dashboard aggregates.
	Stats(ctx context.Context) (*store.DashboardStats, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore  store.TaskStore
	statsStore store.StatsStore
	logger     *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	statsStore store.StatsStore,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", nil)
	}
	if statsStore == nil {
		return nil, domain.NewValidationError("statsStore", "cannot be nil", nil)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore:  taskStore,
		statsStore: statsStore,
		logger:     logger.With(slog.String("component", "task_service")),
	}, nil
}

// List implements TaskService.List
func (s *taskServiceImpl) List(
	ctx context.Context,
	status *domain.TaskStatus,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.List(ctx, status)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list", "failed to list tasks", err)
	}

	return tasks, nil
}

// ListByQuadrant implements TaskService.ListByQuadrant
func (s *taskServiceImpl) ListByQuadrant(
	ctx context.Context,
	quadrant domain.Quadrant,
	status *domain.TaskStatus,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !quadrant.IsValid() {
		return nil, NewTaskServiceError(
			"list_by_quadrant",
			"quadrant must be between 1 and 4",
			domain.ErrInvalidQuadrant,
		)
	}

	tasks, err := s.taskStore.ListByQuadrant(ctx, quadrant, status)
	if err != nil {
		log.Error("failed to list tasks by quadrant",
			slog.String("error", err.Error()),
			slog.Int("quadrant", int(quadrant)))
		return nil, NewTaskServiceError("list_by_quadrant", "failed to list tasks", err)
	}

	return tasks, nil
}

// Get implements TaskService.Get
func (s *taskServiceImpl) Get(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewTaskServiceError("get", "task not found", store.ErrTaskNotFound)
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, NewTaskServiceError("get", "failed to retrieve task", err)
	}

	return task, nil
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(
	ctx context.Context,
	params CreateTaskParams,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(
		params.Title,
		params.Description,
		params.Urgent,
		params.Important,
		params.Justification,
		params.Assignee,
		params.ReminderAt,
		params.Origin,
	)
	if err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create", "invalid task data", err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create", "failed to save task", err)
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.Int("quadrant", int(task.Quadrant)))
	return task, nil
}

// Update implements TaskService.Update
// It performs a read-before-write merge: the stored row is fetched,
// supplied fields are applied on top, and the quadrant is recomputed
// from the merged flag pair whenever Urgent or Important was part of
// the payload (even as explicit false). The merge read and the write
// are not wrapped in a transaction; concurrent updates resolve by
// last-write-wins at row granularity.
func (s *taskServiceImpl) Update(
	ctx context.Context,
	id int64,
	params UpdateTaskParams,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewTaskServiceError("update", "task not found", store.ErrTaskNotFound)
		}
		log.Error("failed to load task for update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, NewTaskServiceError("update", "failed to load task", err)
	}

	if params.Title.Set && params.Title.Valid {
		if title := strings.TrimSpace(params.Title.Value); title != "" {
			task.Title = title
		}
	}
	if params.Description.Set && params.Description.Valid {
		task.Description = &params.Description.Value
	}
	if params.Justification.Set && params.Justification.Valid {
		task.Justification = &params.Justification.Value
	}

	if params.Status.Set && params.Status.Valid {
		if !domain.IsValidTaskStatus(params.Status.Value) {
			return nil, NewTaskServiceError(
				"update",
				"invalid status value",
				domain.ErrInvalidTaskStatus,
			)
		}
		task.Status = params.Status.Value
	}

	// Explicit null clears these two; absent keeps the stored value.
	if params.Assignee.Set {
		if params.Assignee.Valid {
			task.Assignee = &params.Assignee.Value
		} else {
			task.Assignee = nil
		}
	}
	if params.ReminderAt.Set {
		if params.ReminderAt.Valid {
			task.ReminderAt = &params.ReminderAt.Value
		} else {
			task.ReminderAt = nil
		}
	}

	// Quadrant follows the flags: any supplied flag, including an
	// explicit false, triggers recomputation against the merged pair.
	flagTouched := false
	if params.Urgent.Set && params.Urgent.Valid {
		task.Urgent = params.Urgent.Value
		flagTouched = true
	}
	if params.Important.Set && params.Important.Valid {
		task.Important = params.Important.Value
		flagTouched = true
	}
	if flagTouched {
		task.Reclassify()
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewTaskServiceError("update", "task not found", store.ErrTaskNotFound)
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, NewTaskServiceError("update", "failed to save task", err)
	}

	log.Info("task updated",
		slog.Int64("task_id", id),
		slog.Int("quadrant", int(task.Quadrant)),
		slog.Bool("flags_touched", flagTouched))
	return task, nil
}

// Complete implements TaskService.Complete
// Calling it again on a completed task re-stamps completed_at to the
// new call time, and any status (including cancelled) can be
// force-completed. Both are preserved observed behavior.
func (s *taskServiceImpl) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.Complete(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewTaskServiceError("complete", "task not found", store.ErrTaskNotFound)
		}
		log.Error("failed to complete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, NewTaskServiceError("complete", "failed to complete task", err)
	}

	return task, nil
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.Delete(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewTaskServiceError("delete", "task not found", store.ErrTaskNotFound)
		}
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, NewTaskServiceError("delete", "failed to delete task", err)
	}

	return task, nil
}

// Stats implements TaskService.Stats
func (s *taskServiceImpl) Stats(ctx context.Context) (*store.DashboardStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	stats, err := s.statsStore.DashboardStats(ctx)
	if err != nil {
		log.Error("failed to compute dashboard stats", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("stats", "failed to compute stats", err)
	}

	return stats, nil
}
