package postgres

import (
	"context"

	"github.com/agarza/hoopstats/internal/domain"
	"github.com/agarza/hoopstats/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type shootingSessionRepository struct {
	db *gorm.DB
}

func NewShootingSessionRepository(db *gorm.DB) *shootingSessionRepository {
	return &shootingSessionRepository{db: db}
}

func (r *shootingSessionRepository) Create(ctx context.Context, session *domain.ShootingSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *shootingSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShootingSession, error) {
	var session domain.ShootingSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *shootingSessionRepository) List(ctx context.Context, filter repository.SessionFilter) ([]*domain.ShootingSession, error) {
	q := r.db.WithContext(ctx).Model(&domain.ShootingSession{})

	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	q = applyDateRange(q, filter.DateRange)

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var sessions []*domain.ShootingSession
	err := q.Order("session_date DESC, created_at DESC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *shootingSessionRepository) Update(ctx context.Context, session *domain.ShootingSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// Delete is a no-op for ids that do not exist.
func (r *shootingSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ShootingSession{}, "id = ?", id).Error
}

func applyDateRange(q *gorm.DB, dateRange domain.DateRange) *gorm.DB {
	if dateRange.Start != nil {
		q = q.Where("session_date >= ?", *dateRange.Start)
	}
	if dateRange.End != nil {
		q = q.Where("session_date <= ?", *dateRange.End)
	}
	return q
}
