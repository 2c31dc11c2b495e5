package postgres

import (
	"context"
	"time"

	"github.com/agarza/hoopstats/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *statsRepository {
	return &statsRepository{db: db}
}

type totalsRow struct {
	TotalSessions          int64
	FreeThrowsMade         int64
	FreeThrowsAttempted    int64
	ThreePointersMade      int64
	ThreePointersAttempted int64
}

type dailyRow struct {
	Date                   time.Time
	FreeThrowsMade         int64
	FreeThrowsAttempted    int64
	ThreePointersMade      int64
	ThreePointersAttempted int64
}

func (r *statsRepository) Totals(ctx context.Context, userID *uuid.UUID, dateRange domain.DateRange) (domain.ShotTotals, error) {
	q := r.statsQuery(ctx, userID, dateRange)

	var row totalsRow
	err := q.Select(`COUNT(*) AS total_sessions,
		COALESCE(SUM(free_throws_made), 0) AS free_throws_made,
		COALESCE(SUM(free_throws_attempted), 0) AS free_throws_attempted,
		COALESCE(SUM(three_pointers_made), 0) AS three_pointers_made,
		COALESCE(SUM(three_pointers_attempted), 0) AS three_pointers_attempted`).
		Scan(&row).Error
	if err != nil {
		return domain.ShotTotals{}, err
	}

	return domain.ShotTotals{
		TotalSessions:          row.TotalSessions,
		FreeThrowsMade:         row.FreeThrowsMade,
		FreeThrowsAttempted:    row.FreeThrowsAttempted,
		ThreePointersMade:      row.ThreePointersMade,
		ThreePointersAttempted: row.ThreePointersAttempted,
	}, nil
}

func (r *statsRepository) DailyTotals(ctx context.Context, userID *uuid.UUID, dateRange domain.DateRange) ([]domain.DailyStats, error) {
	q := r.statsQuery(ctx, userID, dateRange)

	var rows []dailyRow
	err := q.Select(`session_date AS date,
		COALESCE(SUM(free_throws_made), 0) AS free_throws_made,
		COALESCE(SUM(free_throws_attempted), 0) AS free_throws_attempted,
		COALESCE(SUM(three_pointers_made), 0) AS three_pointers_made,
		COALESCE(SUM(three_pointers_attempted), 0) AS three_pointers_attempted`).
		Group("session_date").
		Order("session_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	daily := make([]domain.DailyStats, 0, len(rows))
	for _, row := range rows {
		daily = append(daily, domain.NewDailyStats(
			row.Date,
			row.FreeThrowsMade,
			row.FreeThrowsAttempted,
			row.ThreePointersMade,
			row.ThreePointersAttempted,
		))
	}
	return daily, nil
}

func (r *statsRepository) statsQuery(ctx context.Context, userID *uuid.UUID, dateRange domain.DateRange) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.ShootingSession{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	return applyDateRange(q, dateRange)
}
