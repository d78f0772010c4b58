package postgres

import (
	"context"
	"log/slog"

	"github.com/eisenhq/eisen-api/internal/domain"
	"github.com/eisenhq/eisen-api/internal/platform/logger"
	"github.com/eisenhq/eisen-api/internal/store"
)

// statsTimezone is the fixed reference timezone for the
// "completed today" calendar-date comparison. Both the stored
// timestamp and NOW() are converted to this zone's local date before
// being compared, so the count is stable regardless of the session or
// server timezone.
const statsTimezone = "America/Sao_Paulo"

// PostgresStatsStore implements the store.StatsStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStatsStore creates a new PostgreSQL implementation of the
// StatsStore interface. If logger is nil, a default logger will be used.
func NewPostgresStatsStore(db store.DBTX, logger *slog.Logger) *PostgresStatsStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "stats_store")),
	}
}

// Ensure PostgresStatsStore implements store.StatsStore interface
var _ store.StatsStore = (*PostgresStatsStore)(nil)

// DashboardStats implements store.StatsStore.DashboardStats
// The four aggregates are computed with independent queries; they are
// not a single atomic snapshot, which is acceptable for dashboard
// rendering.
func (s *PostgresStatsStore) DashboardStats(ctx context.Context) (*store.DashboardStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	stats := &store.DashboardStats{
		ByQuadrantStatus: []store.QuadrantStatusCount{},
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE quadrant = $1 AND status NOT IN ($2, $3)
	`, domain.QuadrantDoNow, domain.TaskStatusCompleted, domain.TaskStatusCancelled).
		Scan(&stats.UrgentPendingImportant)
	if err != nil {
		log.Error("failed to count urgent pending tasks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE quadrant = $1 AND status NOT IN ($2, $3)
	`, domain.QuadrantSchedule, domain.TaskStatusCompleted, domain.TaskStatusCancelled).
		Scan(&stats.ScheduledPending)
	if err != nil {
		log.Error("failed to count scheduled pending tasks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE status = $1
		  AND DATE(completed_at AT TIME ZONE '`+statsTimezone+`') =
		      (CURRENT_TIMESTAMP AT TIME ZONE '`+statsTimezone+`')::date
	`, domain.TaskStatusCompleted).Scan(&stats.CompletedToday)
	if err != nil {
		log.Error("failed to count tasks completed today", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT quadrant, status, COUNT(*) AS total
		FROM tasks
		GROUP BY quadrant, status
		ORDER BY quadrant, status
	`)
	if err != nil {
		log.Error("failed to query per-quadrant counts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	for rows.Next() {
		var row store.QuadrantStatusCount
		if err := rows.Scan(&row.Quadrant, &row.Status, &row.Total); err != nil {
			log.Error("failed to scan quadrant count row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		stats.ByQuadrantStatus = append(stats.ByQuadrantStatus, row)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("dashboard stats computed",
		slog.Int("urgent_pending_important", stats.UrgentPendingImportant),
		slog.Int("scheduled_pending", stats.ScheduledPending),
		slog.Int("completed_today", stats.CompletedToday),
		slog.Int("grouped_rows", len(stats.ByQuadrantStatus)))
	return stats, nil
}
