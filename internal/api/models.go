package api

import (
	"time"

	"github.com/eisenhq/eisen-api/internal/domain"
)

// Common request/response structures

// CreateTaskRequest defines the payload for task creation. Quadrant is
// deliberately not a field: it is derived from the flags and never
// accepted from callers.
type CreateTaskRequest struct {
	Title         string     `json:"title"         validate:"required"`
	Description   *string    `json:"description"`
	Urgent        bool       `json:"urgent"`
	Important     bool       `json:"important"`
	Justification *string    `json:"justification"`
	Assignee      *string    `json:"assignee"`
	ReminderAt    *time.Time `json:"reminder_at"`
	Origin        string     `json:"origin"`
}

// UpdateTaskRequest defines the partial-update payload. Every field is
// tri-state (absent / null / value); see domain.Optional for the
// decoding rules. As with create, quadrant cannot be set directly.
type UpdateTaskRequest struct {
	Title         domain.Optional[string]            `json:"title"`
	Description   domain.Optional[string]            `json:"description"`
	Urgent        domain.Optional[bool]              `json:"urgent"`
	Important     domain.Optional[bool]              `json:"important"`
	Justification domain.Optional[string]            `json:"justification"`
	Assignee      domain.Optional[string]            `json:"assignee"`
	Status        domain.Optional[domain.TaskStatus] `json:"status"`
	ReminderAt    domain.Optional[time.Time]         `json:"reminder_at"`
}

// TaskResponse represents the response data for a task. Optional
// fields serialize as JSON null when unset, matching what the
// dashboard expects.
type TaskResponse struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Urgent        bool       `json:"urgent"`
	Important     bool       `json:"important"`
	Quadrant      int        `json:"quadrant"`
	Justification *string    `json:"justification"`
	Assignee      *string    `json:"assignee"`
	Status        string     `json:"status"`
	ReminderAt    *time.Time `json:"reminder_at"`
	Origin        string     `json:"origin"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at"`
}

// DeleteTaskResponse confirms a hard delete, echoing the removed task.
type DeleteTaskResponse struct {
	Message string       `json:"message"`
	Task    TaskResponse `json:"task"`
}

// HealthResponse is the body of the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Urgent:        task.Urgent,
		Important:     task.Important,
		Quadrant:      int(task.Quadrant),
		Justification: task.Justification,
		Assignee:      task.Assignee,
		Status:        string(task.Status),
		ReminderAt:    task.ReminderAt,
		Origin:        task.Origin,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
		CompletedAt:   task.CompletedAt,
	}
}

// tasksToResponse converts a slice of tasks, always returning a
// non-nil slice so empty lists serialize as [] rather than null.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}
	return responses
}
