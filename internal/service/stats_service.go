package service

import (
	"context"
	"errors"
	"time"

	"github.com/agarza/hoopstats/internal/domain"
	"github.com/agarza/hoopstats/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatsService computes derived shooting aggregates. It only ever issues
// read-only queries against the injected repositories.
type StatsService struct {
	statsRepo repository.StatsRepository
	userRepo  repository.UserRepository
}

func NewStatsService(statsRepo repository.StatsRepository, userRepo repository.UserRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		userRepo:  userRepo,
	}
}

// StatsQuery selects the session set to aggregate. A nil UserID means all
// users; an explicit StartDate/EndDate pair overrides Period.
type StatsQuery struct {
	UserID    *uuid.UUID
	Period    domain.Period
	StartDate *time.Time
	EndDate   *time.Time
}

// StatsResult is the aggregate summary plus the per-day breakdown.
type StatsResult struct {
	Summary domain.AggregateStats
	Daily   []domain.DailyStats
}

// GetStats aggregates the sessions matching the query into a summary and a
// daily breakdown ordered by date ascending. Zero matching sessions yield
// all-zero stats and an empty breakdown.
func (s *StatsService) GetStats(ctx context.Context, query StatsQuery) (*StatsResult, error) {
	dateRange := domain.ResolveRange(query.Period, query.StartDate, query.EndDate, time.Now())

	totals, err := s.statsRepo.Totals(ctx, query.UserID, dateRange)
	if err != nil {
		return nil, err
	}

	daily, err := s.statsRepo.DailyTotals(ctx, query.UserID, dateRange)
	if err != nil {
		return nil, err
	}

	return &StatsResult{
		Summary: domain.NewAggregateStats(totals),
		Daily:   daily,
	}, nil
}

// Compare aggregates one stat line per requested user, in request order.
// Unknown user ids are dropped; users with no matching sessions are included
// with zero stats. An empty id list yields an empty result.
func (s *StatsService) Compare(ctx context.Context, userIDs []uuid.UUID, period domain.Period) ([]domain.UserStats, error) {
	dateRange := domain.ResolveRange(period, nil, nil, time.Now())

	results := make([]domain.UserStats, 0, len(userIDs))
	for _, userID := range userIDs {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		totals, err := s.statsRepo.Totals(ctx, &user.ID, dateRange)
		if err != nil {
			return nil, err
		}

		results = append(results, domain.UserStats{
			UserID:         user.ID,
			DisplayName:    user.DisplayName,
			AggregateStats: domain.NewAggregateStats(totals),
		})
	}
	return results, nil
}
