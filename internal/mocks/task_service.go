package mocks

import (
	"context"

	"github.com/eisenhq/eisen-api/internal/domain"
	"github.com/eisenhq/eisen-api/internal/service"
	"github.com/eisenhq/eisen-api/internal/store"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Custom behavior functions
	ListFn           func(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error)
	ListByQuadrantFn func(ctx context.Context, quadrant domain.Quadrant, status *domain.TaskStatus) ([]*domain.Task, error)
	GetFn            func(ctx context.Context, id int64) (*domain.Task, error)
	CreateFn         func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error)
	UpdateFn         func(ctx context.Context, id int64, params service.UpdateTaskParams) (*domain.Task, error)
	CompleteFn       func(ctx context.Context, id int64) (*domain.Task, error)
	DeleteFn         func(ctx context.Context, id int64) (*domain.Task, error)
	StatsFn          func(ctx context.Context) (*store.DashboardStats, error)

	// Default response values
	Tasks       []*domain.Task
	Task        *domain.Task
	StatsResult *store.DashboardStats
	Err         error
}

// Statically verify interface compliance
var _ service.TaskService = (*MockTaskService)(nil)

// List implements service.TaskService
func (m *MockTaskService) List(
	ctx context.Context,
	status *domain.TaskStatus,
) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return m.Tasks, m.Err
}

// ListByQuadrant implements service.TaskService
func (m *MockTaskService) ListByQuadrant(
	ctx context.Context,
	quadrant domain.Quadrant,
	status *domain.TaskStatus,
) ([]*domain.Task, error) {
	if m.ListByQuadrantFn != nil {
		return m.ListByQuadrantFn(ctx, quadrant, status)
	}
	return m.Tasks, m.Err
}

// Get implements service.TaskService
func (m *MockTaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Task, m.Err
}

// Create implements service.TaskService
func (m *MockTaskService) Create(
	ctx context.Context,
	params service.CreateTaskParams,
) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, params)
	}
	return m.Task, m.Err
}

// Update implements service.TaskService
func (m *MockTaskService) Update(
	ctx context.Context,
	id int64,
	params service.UpdateTaskParams,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, params)
	}
	return m.Task, m.Err
}

// Complete implements service.TaskService
func (m *MockTaskService) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, id)
	}
	return m.Task, m.Err
}

// Delete implements service.TaskService
func (m *MockTaskService) Delete(ctx context.Context, id int64) (*domain.Task, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Task, m.Err
}

// Stats implements service.TaskService
func (m *MockTaskService) Stats(ctx context.Context) (*store.DashboardStats, error) {
	if m.StatsFn != nil {
		return m.StatsFn(ctx)
	}
	return m.StatsResult, m.Err
}
