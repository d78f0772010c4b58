package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eisenhq/eisen-api/internal/domain"
	"github.com/eisenhq/eisen-api/internal/service"
	"github.com/eisenhq/eisen-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"generic not found", store.ErrNotFound, http.StatusNotFound},
		{"empty title", domain.ErrEmptyTaskTitle, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidTaskStatus, http.StatusBadRequest},
		{"invalid quadrant", domain.ErrInvalidQuadrant, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"constraint violation", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestMapErrorToStatusCodeUnwrapsServiceErrors(t *testing.T) {
	t.Parallel()

	// Service errors wrap the sentinel; mapping must see through them.
	err := service.NewTaskServiceError("get", "task not found", store.ErrTaskNotFound)
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(err))

	err = service.NewTaskServiceError("create", "invalid task data",
		fmt.Errorf("wrapped again: %w", domain.ErrEmptyTaskTitle))
	assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(err))
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"empty title", domain.ErrEmptyTaskTitle, "Title is required"},
		{"invalid status", domain.ErrInvalidTaskStatus, "Invalid status value"},
		{"invalid quadrant", domain.ErrInvalidQuadrant, "Quadrant must be between 1 and 4"},
		{"constraint violation", store.ErrInvalidEntity, "Invalid task data"},
		{"unknown", errors.New("pq: deadlock detected"), "An unexpected error occurred"},
		{"nil", nil, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'CreateTaskRequest.Title' Error:Field validation for 'Title' failed on the 'required' tag")
	assert.Equal(t, "Invalid Title: required field", SanitizeValidationError(err))

	err = errors.New("something else entirely")
	assert.Equal(t, "Validation error", SanitizeValidationError(err))
}
