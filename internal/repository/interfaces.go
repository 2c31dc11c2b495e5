package repository

import (
	"context"

	"github.com/agarza/hoopstats/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserSessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSession, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// SessionFilter narrows a shooting-session listing. Nil fields are ignored.
type SessionFilter struct {
	UserID    *uuid.UUID
	DateRange domain.DateRange
	Limit     int
}

type ShootingSessionRepository interface {
	Create(ctx context.Context, session *domain.ShootingSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ShootingSession, error)
	List(ctx context.Context, filter SessionFilter) ([]*domain.ShootingSession, error)
	Update(ctx context.Context, session *domain.ShootingSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsRepository issues the read-only aggregate queries the stats engine is
// built on. Predicates are always parameterized, never interpolated.
type StatsRepository interface {
	Totals(ctx context.Context, userID *uuid.UUID, dateRange domain.DateRange) (domain.ShotTotals, error)
	DailyTotals(ctx context.Context, userID *uuid.UUID, dateRange domain.DateRange) ([]domain.DailyStats, error)
}

type Repositories struct {
	User            UserRepository
	UserSession     UserSessionRepository
	ShootingSession ShootingSessionRepository
	Stats           StatsRepository
}
