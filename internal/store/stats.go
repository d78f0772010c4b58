package store

import (
	"context"

	"github.com/eisenhq/eisen-api/internal/domain"
)

// QuadrantStatusCount is one row of the per-(quadrant, status) grouping.
type QuadrantStatusCount struct {
	Quadrant domain.Quadrant   `json:"quadrant"`
	Status   domain.TaskStatus `json:"status"`
	Total    int               `json:"total"`
}

// DashboardStats holds the four aggregates rendered on the dashboard.
// Completed and cancelled tasks are excluded from the two pending
// counts; CompletedToday compares calendar dates in the reference
// timezone (America/Sao_Paulo).
type DashboardStats struct {
	UrgentPendingImportant int                   `json:"urgent_pending_important"`
	ScheduledPending       int                   `json:"scheduled_pending"`
	CompletedToday         int                   `json:"completed_today"`
	ByQuadrantStatus       []QuadrantStatusCount `json:"by_quadrant_status"`
}

// StatsStore defines the interface for dashboard aggregate queries.
type StatsStore interface {
	// DashboardStats computes the aggregates over current store
	// contents. The underlying queries are independent reads; minor
	// skew between them under concurrent writes is acceptable.
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}
