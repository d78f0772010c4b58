package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eisenhq/eisen-api/internal/api/shared"
	"github.com/eisenhq/eisen-api/internal/domain"
	"github.com/eisenhq/eisen-api/internal/platform/logger"
	"github.com/eisenhq/eisen-api/internal/redact"
	"github.com/eisenhq/eisen-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// taskIDFromRequest extracts and parses the {id} URL parameter.
func taskIDFromRequest(r *http.Request) (int64, bool) {
	idParam := chi.URLParam(r, "id")
	if idParam == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// statusFilterFromRequest parses the optional ?status= query parameter.
// The bool result reports whether the value (if present) was valid.
func statusFilterFromRequest(r *http.Request) (*domain.TaskStatus, bool) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, true
	}
	status := domain.TaskStatus(raw)
	if !domain.IsValidTaskStatus(status) {
		return nil, false
	}
	return &status, true
}

// ListTasks handles GET /tasks requests.
// It returns all tasks newest first, optionally filtered by status.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	status, ok := statusFilterFromRequest(r)
	if !ok {
		log.Debug("invalid status filter", slog.String("status", r.URL.Query().Get("status")))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status filter")
		return
	}

	tasks, err := h.taskService.List(r.Context(), status)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to list tasks", err)
		return
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// ListTasksByQuadrant handles GET /tasks/quadrant/{quadrant} requests.
func (h *TaskHandler) ListTasksByQuadrant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	quadrantParam := chi.URLParam(r, "quadrant")
	quadrantNum, err := strconv.Atoi(quadrantParam)
	if err != nil || !domain.Quadrant(quadrantNum).IsValid() {
		log.Debug("invalid quadrant parameter", slog.String("quadrant", quadrantParam))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Quadrant must be between 1 and 4")
		return
	}

	status, ok := statusFilterFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status filter")
		return
	}

	tasks, err := h.taskService.ListByQuadrant(r.Context(), domain.Quadrant(quadrantNum), status)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to list tasks"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("tasks listed by quadrant",
		slog.Int("quadrant", quadrantNum),
		slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := taskIDFromRequest(r)
	if !ok {
		log.Debug("invalid task ID format", slog.String("id", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST /tasks requests.
// The quadrant of the created task is derived from the urgent and
// important flags; any quadrant value in the payload is ignored.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err,
			shared.WithElevatedLogLevel())
		return
	}

	task, err := h.taskService.Create(r.Context(), service.CreateTaskParams{
		Title:         req.Title,
		Description:   req.Description,
		Urgent:        req.Urgent,
		Important:     req.Important,
		Justification: req.Justification,
		Assignee:      req.Assignee,
		ReminderAt:    req.ReminderAt,
		Origin:        req.Origin,
	})
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.Int("quadrant", int(task.Quadrant)))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests.
// Partial update: absent fields keep their stored values, explicit null
// clears assignee and reminder_at, and supplying either urgent or
// important (even as false) recomputes the quadrant against the merged
// flag pair. This is the one path that echoes redacted error details on
// server failures.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := taskIDFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskService.Update(r.Context(), id, service.UpdateTaskParams{
		Title:         req.Title,
		Description:   req.Description,
		Urgent:        req.Urgent,
		Important:     req.Important,
		Justification: req.Justification,
		Assignee:      req.Assignee,
		Status:        req.Status,
		ReminderAt:    req.ReminderAt,
	})
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to update task"
			shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err,
				shared.WithErrorDetails())
			return
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task updated",
		slog.Int64("task_id", id),
		slog.Int("quadrant", int(task.Quadrant)))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CompleteTask handles PATCH /tasks/{id}/complete requests.
// Completion stamps completed_at to the call time; repeating the call
// re-stamps it rather than rejecting the request.
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := taskIDFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	task, err := h.taskService.Complete(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to complete task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task completed", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := taskIDFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	task, err := h.taskService.Delete(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to delete task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task deleted", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		Message: "task deleted",
		Task:    taskToResponse(task),
	})
}

// GetStats handles GET /tasks/stats requests.
func (h *TaskHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	stats, err := h.taskService.Stats(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r,
			MapErrorToStatusCode(err),
			"Failed to compute stats",
			err,
		)
		return
	}

	log.Debug("stats computed")
	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
