package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eisenhq/eisen-api/internal/domain"
	"github.com/eisenhq/eisen-api/internal/mocks"
	"github.com/eisenhq/eisen-api/internal/service"
	"github.com/eisenhq/eisen-api/internal/store"
)

// newTestRouter mounts the task routes the way the server wires them.
func newTestRouter(svc service.TaskService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewTaskHandler(svc, logger)

	r := chi.NewRouter()
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", handler.ListTasks)
		r.Post("/", handler.CreateTask)
		r.Get("/stats", handler.GetStats)
		r.Get("/quadrant/{quadrant}", handler.ListTasksByQuadrant)
		r.Get("/{id}", handler.GetTask)
		r.Put("/{id}", handler.UpdateTask)
		r.Patch("/{id}/complete", handler.CompleteTask)
		r.Delete("/{id}", handler.DeleteTask)
	})
	return r
}

func sampleTask(id int64) *domain.Task {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Task{
		ID:        id,
		Title:     "sample task",
		Urgent:    true,
		Important: true,
		Quadrant:  domain.QuadrantDoNow,
		Status:    domain.TaskStatusPending,
		Origin:    domain.DefaultOrigin,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func notFoundErr(op string) error {
	return service.NewTaskServiceError(op, "task not found", store.ErrTaskNotFound)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListTasks(t *testing.T) {
	t.Parallel()

	t.Run("returns tasks", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{
			Tasks: []*domain.Task{sampleTask(1), sampleTask(2)},
		})

		w := doRequest(t, router, http.MethodGet, "/tasks", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got []TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("empty list serializes as array", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{})

		w := doRequest(t, router, http.MethodGet, "/tasks", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("status filter forwarded", func(t *testing.T) {
		var gotStatus *domain.TaskStatus
		router := newTestRouter(&mocks.MockTaskService{
			ListFn: func(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error) {
				gotStatus = status
				return nil, nil
			},
		})

		w := doRequest(t, router, http.MethodGet, "/tasks?status=completed", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotStatus)
		assert.Equal(t, domain.TaskStatusCompleted, *gotStatus)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{})

		w := doRequest(t, router, http.MethodGet, "/tasks?status=archived", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{
			Err: service.NewTaskServiceError("list", "failed to list tasks", errors.New("db down")),
		})

		w := doRequest(t, router, http.MethodGet, "/tasks", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListTasksByQuadrant(t *testing.T) {
	t.Parallel()

	t.Run("returns tasks for quadrant", func(t *testing.T) {
		var gotQuadrant domain.Quadrant
		router := newTestRouter(&mocks.MockTaskService{
			ListByQuadrantFn: func(ctx context.Context, q domain.Quadrant, status *domain.TaskStatus) ([]*domain.Task, error) {
				gotQuadrant = q
				return []*domain.Task{sampleTask(1)}, nil
			},
		})

		w := doRequest(t, router, http.MethodGet, "/tasks/quadrant/2", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.QuadrantSchedule, gotQuadrant)
	})

	t.Run("rejects out of range and garbage values", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{})

		for _, q := range []string{"0", "5", "-1", "abc"} {
			w := doRequest(t, router, http.MethodGet, "/tasks/quadrant/"+q, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, "quadrant %q", q)
		}
	})
}

func TestGetTask(t *testing.T) {
	t.Parallel()

	t.Run("returns task", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{Task: sampleTask(7)})

		w := doRequest(t, router, http.MethodGet, "/tasks/7", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, 1, got.Quadrant)
	})

	t.Run("invalid id format", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{})

		for _, id := range []string{"abc", "0", "-3", "1.5"} {
			w := doRequest(t, router, http.MethodGet, "/tasks/"+id, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
		}
	})

	t.Run("not found", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{Err: notFoundErr("get")})

		w := doRequest(t, router, http.MethodGet, "/tasks/99", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp, "error")
	})
}

func TestCreateTask(t *testing.T) {
	t.Parallel()

	t.Run("creates and returns 201", func(t *testing.T) {
		var gotParams service.CreateTaskParams
		router := newTestRouter(&mocks.MockTaskService{
			CreateFn: func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error) {
				gotParams = params
				task := sampleTask(10)
				task.Title = params.Title
				return task, nil
			},
		})

		body := []byte(`{"title": "write launch notes", "urgent": true, "important": true}`)
		w := doRequest(t, router, http.MethodPost, "/tasks", body)
		require.Equal(t, http.StatusCreated, w.Code)

		assert.Equal(t, "write launch notes", gotParams.Title)
		assert.True(t, gotParams.Urgent)
		assert.True(t, gotParams.Important)

		var got TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(10), got.ID)
	})

	t.Run("quadrant in payload is ignored", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{
			CreateFn: func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error) {
				task := sampleTask(11)
				task.Urgent = params.Urgent
				task.Important = params.Important
				task.Reclassify()
				return task, nil
			},
		})

		// quadrant 4 requested but flags say quadrant 1
		body := []byte(`{"title": "t", "urgent": true, "important": true, "quadrant": 4}`)
		w := doRequest(t, router, http.MethodPost, "/tasks", body)
		require.Equal(t, http.StatusCreated, w.Code)

		var got TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 1, got.Quadrant)
	})

	t.Run("missing title", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{})

		w := doRequest(t, router, http.MethodPost, "/tasks", []byte(`{"urgent": true}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{})

		w := doRequest(t, router, http.MethodPost, "/tasks", []byte(`{"title": `))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("whitespace title rejected by domain", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{
			Err: service.NewTaskServiceError("create", "invalid task data", domain.ErrEmptyTaskTitle),
		})

		w := doRequest(t, router, http.MethodPost, "/tasks", []byte(`{"title": "   "}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()

	t.Run("forwards tri-state fields", func(t *testing.T) {
		var gotParams service.UpdateTaskParams
		router := newTestRouter(&mocks.MockTaskService{
			UpdateFn: func(ctx context.Context, id int64, params service.UpdateTaskParams) (*domain.Task, error) {
				gotParams = params
				return sampleTask(id), nil
			},
		})

		body := []byte(`{"title": "renamed", "assignee": null, "important": false}`)
		w := doRequest(t, router, http.MethodPut, "/tasks/5", body)
		require.Equal(t, http.StatusOK, w.Code)

		assert.True(t, gotParams.Title.Set)
		assert.True(t, gotParams.Title.Valid)
		assert.Equal(t, "renamed", gotParams.Title.Value)

		assert.True(t, gotParams.Assignee.Set)
		assert.False(t, gotParams.Assignee.Valid)

		assert.True(t, gotParams.Important.Set)
		assert.True(t, gotParams.Important.Valid)
		assert.False(t, gotParams.Important.Value)

		assert.False(t, gotParams.Urgent.Set)
		assert.False(t, gotParams.Status.Set)
	})

	t.Run("invalid status value", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{
			Err: service.NewTaskServiceError("update", "invalid status value", domain.ErrInvalidTaskStatus),
		})

		w := doRequest(t, router, http.MethodPut, "/tasks/5", []byte(`{"status": "archived"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{Err: notFoundErr("update")})

		w := doRequest(t, router, http.MethodPut, "/tasks/99", []byte(`{"title": "x"}`))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("server failure includes redacted details", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{
			Err: service.NewTaskServiceError("update", "failed to save task",
				errors.New(`connection to "postgres://user:hunter2@db:5432/eisen" refused`)),
		})

		w := doRequest(t, router, http.MethodPut, "/tasks/5", []byte(`{"title": "x"}`))
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		details, ok := resp["details"].(string)
		require.True(t, ok, "expected details in response")
		assert.NotContains(t, details, "hunter2")
	})
}

// TestUpdateTaskThroughService exercises the handler with the real
// service over a mocked store, so the merge semantics hold end to end.
func TestUpdateTaskThroughService(t *testing.T) {
	t.Parallel()

	stored := sampleTask(1)
	stored.Important = false
	stored.Quadrant = domain.QuadrantDelegate
	assignee := "dana"
	stored.Assignee = &assignee

	taskStore := &mocks.MockTaskStore{
		GetByIDFn: func(ctx context.Context, id int64) (*domain.Task, error) {
			clone := *stored
			return &clone, nil
		},
	}
	svc, err := service.NewTaskService(taskStore, &mocks.MockStatsStore{}, nil)
	require.NoError(t, err)
	router := newTestRouter(svc)

	body := []byte(`{"important": true, "assignee": null}`)
	w := doRequest(t, router, http.MethodPut, "/tasks/1", body)
	require.Equal(t, http.StatusOK, w.Code)

	var got TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Urgent, "stored urgent flag should survive the merge")
	assert.True(t, got.Important)
	assert.Equal(t, 1, got.Quadrant, "supplying one flag recomputes against the stored pair")
	assert.Nil(t, got.Assignee, "explicit null clears the assignee")
}

func TestCompleteTask(t *testing.T) {
	t.Parallel()

	t.Run("returns completed task", func(t *testing.T) {
		completedAt := time.Now().UTC()
		done := sampleTask(3)
		done.Status = domain.TaskStatusCompleted
		done.CompletedAt = &completedAt
		router := newTestRouter(&mocks.MockTaskService{Task: done})

		w := doRequest(t, router, http.MethodPatch, "/tasks/3/complete", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, string(domain.TaskStatusCompleted), got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("not found", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{Err: notFoundErr("complete")})

		w := doRequest(t, router, http.MethodPatch, "/tasks/99/complete", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	t.Run("confirms deletion with the removed task", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{Task: sampleTask(4)})

		w := doRequest(t, router, http.MethodDelete, "/tasks/4", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got DeleteTaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "task deleted", got.Message)
		assert.Equal(t, int64(4), got.Task.ID)
	})

	t.Run("not found", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{Err: notFoundErr("delete")})

		w := doRequest(t, router, http.MethodDelete, "/tasks/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetStats(t *testing.T) {
	t.Parallel()

	t.Run("returns aggregates", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{
			StatsResult: &store.DashboardStats{
				UrgentPendingImportant: 3,
				ScheduledPending:       4,
				CompletedToday:         2,
				ByQuadrantStatus: []store.QuadrantStatusCount{
					{Quadrant: 1, Status: domain.TaskStatusPending, Total: 3},
					{Quadrant: 2, Status: domain.TaskStatusPending, Total: 4},
				},
			},
		})

		w := doRequest(t, router, http.MethodGet, "/tasks/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got store.DashboardStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 3, got.UrgentPendingImportant)
		assert.Equal(t, 4, got.ScheduledPending)
		assert.Equal(t, 2, got.CompletedToday)
		assert.Len(t, got.ByQuadrantStatus, 2)
	})

	t.Run("service failure", func(t *testing.T) {
		router := newTestRouter(&mocks.MockTaskService{
			Err: service.NewTaskServiceError("stats", "failed to compute stats", errors.New("db down")),
		})

		w := doRequest(t, router, http.MethodGet, "/tasks/stats", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
