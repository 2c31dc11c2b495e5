package service

import (
	"context"
	"errors"
	"time"

	"github.com/agarza/hoopstats/internal/domain"
	"github.com/agarza/hoopstats/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionService struct {
	sessionRepo repository.ShootingSessionRepository
	userRepo    repository.UserRepository
}

func NewSessionService(sessionRepo repository.ShootingSessionRepository, userRepo repository.UserRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

// SessionInput carries the writable fields of a shooting session. Absent
// counts default to zero.
type SessionInput struct {
	UserID                 uuid.UUID
	SessionDate            time.Time
	FreeThrowsMade         int
	FreeThrowsAttempted    int
	ThreePointersMade      int
	ThreePointersAttempted int
	Notes                  *string
}

// ListInput narrows the session listing. Explicit date bounds are applied
// individually and suppress the period filter.
type ListInput struct {
	UserID    *uuid.UUID
	Period    domain.Period
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// SessionListItem is a session row joined with its owner's display name.
type SessionListItem struct {
	Session         *domain.ShootingSession
	UserDisplayName string
}

func (s *SessionService) Create(ctx context.Context, input SessionInput) (*domain.ShootingSession, error) {
	session := &domain.ShootingSession{
		ID:                     uuid.New(),
		UserID:                 input.UserID,
		SessionDate:            datatypes.Date(input.SessionDate),
		FreeThrowsMade:         input.FreeThrowsMade,
		FreeThrowsAttempted:    input.FreeThrowsAttempted,
		ThreePointersMade:      input.ThreePointersMade,
		ThreePointersAttempted: input.ThreePointersAttempted,
		Notes:                  input.Notes,
		CreatedAt:              time.Now(),
		UpdatedAt:              time.Now(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Update(ctx context.Context, id uuid.UUID, input SessionInput) (*domain.ShootingSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session.SessionDate = datatypes.Date(input.SessionDate)
	session.FreeThrowsMade = input.FreeThrowsMade
	session.FreeThrowsAttempted = input.FreeThrowsAttempted
	session.ThreePointersMade = input.ThreePointersMade
	session.ThreePointersAttempted = input.ThreePointersAttempted
	session.Notes = input.Notes
	session.UpdatedAt = time.Now()

	if err := session.Validate(); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete removes a session. Deleting an id that does not exist is a no-op.
func (s *SessionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.sessionRepo.Delete(ctx, id)
}

func (s *SessionService) List(ctx context.Context, input ListInput) ([]*SessionListItem, error) {
	var dateRange domain.DateRange
	if input.StartDate != nil || input.EndDate != nil {
		dateRange = domain.DateRange{Start: input.StartDate, End: input.EndDate}
	} else {
		dateRange = domain.ResolveRange(input.Period, nil, nil, time.Now())
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 50
	}

	sessions, err := s.sessionRepo.List(ctx, repository.SessionFilter{
		UserID:    input.UserID,
		DateRange: dateRange,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	displayNames := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		displayNames[u.ID] = u.DisplayName
	}

	items := make([]*SessionListItem, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, &SessionListItem{
			Session:         session,
			UserDisplayName: displayNames[session.UserID],
		})
	}
	return items, nil
}
