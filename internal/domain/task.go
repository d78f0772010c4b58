package domain

import (
	"errors"
	"strings"
	"time"
)

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// DefaultOrigin is the origin tag applied to tasks created without an
// explicit origin (e.g. through the dashboard form).
const DefaultOrigin = "manual"

// Common validation errors for Task
var (
	ErrEmptyTaskTitle    = errors.New("task title cannot be empty")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// Task represents a to-do item classified into an Eisenhower Matrix
// quadrant. Quadrant is derived from the Urgent/Important pair and is
// never accepted directly from callers; every write path that touches
// either flag recomputes it via Classify.
type Task struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Urgent        bool       `json:"urgent"`
	Important     bool       `json:"important"`
	Quadrant      Quadrant   `json:"quadrant"`
	Justification *string    `json:"justification"`
	Assignee      *string    `json:"assignee"`
	Status        TaskStatus `json:"status"`
	ReminderAt    *time.Time `json:"reminder_at"`
	Origin        string     `json:"origin"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at"`
}

// NewTask creates a new Task with the given fields, classifying it into
// a quadrant and defaulting status to pending and origin to "manual".
// The ID and timestamps are assigned by the store on insert.
// Returns an error if validation fails.
func NewTask(
	title string,
	description *string,
	urgent, important bool,
	justification, assignee *string,
	reminderAt *time.Time,
	origin string,
) (*Task, error) {
	if origin == "" {
		origin = DefaultOrigin
	}

	task := &Task{
		Title:         strings.TrimSpace(title),
		Description:   description,
		Urgent:        urgent,
		Important:     important,
		Quadrant:      Classify(urgent, important),
		Justification: justification,
		Assignee:      assignee,
		Status:        TaskStatusPending,
		ReminderAt:    reminderAt,
		Origin:        origin,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTaskTitle
	}

	if !IsValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// Reclassify recomputes the task's quadrant from its current
// urgent/important pair. Called after any mutation of either flag.
func (t *Task) Reclassify() {
	t.Quadrant = Classify(t.Urgent, t.Important)
}

// IsValidTaskStatus checks if the given status is a valid TaskStatus.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	default:
		return false
	}
}
