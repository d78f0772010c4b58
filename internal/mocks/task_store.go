package mocks

import (
	"context"
	"sync"

	"github.com/eisenhq/eisen-api/internal/domain"
	"github.com/eisenhq/eisen-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Custom behavior functions
	ListFn           func(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error)
	ListByQuadrantFn func(ctx context.Context, quadrant domain.Quadrant, status *domain.TaskStatus) ([]*domain.Task, error)
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Task, error)
	CreateFn         func(ctx context.Context, task *domain.Task) error
	UpdateFn         func(ctx context.Context, task *domain.Task) error
	CompleteFn       func(ctx context.Context, id int64) (*domain.Task, error)
	DeleteFn         func(ctx context.Context, id int64) (*domain.Task, error)

	// Default response values
	Tasks []*domain.Task
	Task  *domain.Task
	Err   error

	// Call tracking for verification
	mu            sync.Mutex
	ListCalls     int
	CreateCalls   int
	UpdateCalls   int
	CompleteCalls int
	DeleteCalls   int
	LastUpdated   *domain.Task
}

// Statically verify interface compliance
var _ store.TaskStore = (*MockTaskStore)(nil)

// List implements store.TaskStore
func (m *MockTaskStore) List(
	ctx context.Context,
	status *domain.TaskStatus,
) ([]*domain.Task, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return m.Tasks, m.Err
}

// ListByQuadrant implements store.TaskStore
func (m *MockTaskStore) ListByQuadrant(
	ctx context.Context,
	quadrant domain.Quadrant,
	status *domain.TaskStatus,
) ([]*domain.Task, error) {
	if m.ListByQuadrantFn != nil {
		return m.ListByQuadrantFn(ctx, quadrant, status)
	}
	return m.Tasks, m.Err
}

// GetByID implements store.TaskStore
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Task, m.Err
}

// Create implements store.TaskStore
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.Err
}

// Update implements store.TaskStore
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.LastUpdated = task
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return m.Err
}

// Complete implements store.TaskStore
func (m *MockTaskStore) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	m.mu.Lock()
	m.CompleteCalls++
	m.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, id)
	}
	return m.Task, m.Err
}

// Delete implements store.TaskStore
func (m *MockTaskStore) Delete(ctx context.Context, id int64) (*domain.Task, error) {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Task, m.Err
}

// MockStatsStore implements store.StatsStore for testing
type MockStatsStore struct {
	DashboardStatsFn func(ctx context.Context) (*store.DashboardStats, error)

	Stats *store.DashboardStats
	Err   error
}

// Statically verify interface compliance
var _ store.StatsStore = (*MockStatsStore)(nil)

// DashboardStats implements store.StatsStore
func (m *MockStatsStore) DashboardStats(ctx context.Context) (*store.DashboardStats, error) {
	if m.DashboardStatsFn != nil {
		return m.DashboardStatsFn(ctx)
	}
	return m.Stats, m.Err
}
