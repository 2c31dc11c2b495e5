package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShootingSession is one recorded practice entry: shot attempts and makes
// for a single calendar date.
type ShootingSession struct {
	ID                     uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID                 uuid.UUID      `json:"userId" gorm:"type:uuid;not null;index"`
	SessionDate            datatypes.Date `json:"-" gorm:"type:date;not null;index"`
	FreeThrowsMade         int            `json:"freeThrowsMade" gorm:"not null;default:0"`
	FreeThrowsAttempted    int            `json:"freeThrowsAttempted" gorm:"not null;default:0"`
	ThreePointersMade      int            `json:"threePointersMade" gorm:"not null;default:0"`
	ThreePointersAttempted int            `json:"threePointersAttempted" gorm:"not null;default:0"`
	Notes                  *string        `json:"notes"`
	CreatedAt              time.Time      `json:"createdAt"`
	UpdatedAt              time.Time      `json:"updatedAt"`
}

func (ShootingSession) TableName() string {
	return "shooting_sessions"
}

// Date returns the session date as a plain time.Time at midnight UTC.
func (s *ShootingSession) Date() time.Time {
	return time.Time(s.SessionDate)
}

// Validate checks the write-time invariants: user and date must be present,
// and made counts may never exceed attempted counts. Missing counts are
// zero-valued and therefore always valid.
func (s *ShootingSession) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrUserIDRequired
	}
	if time.Time(s.SessionDate).IsZero() {
		return ErrSessionDateRequired
	}
	if s.FreeThrowsMade > s.FreeThrowsAttempted || s.ThreePointersMade > s.ThreePointersAttempted {
		return ErrMadeExceedsAttempted
	}
	return nil
}
