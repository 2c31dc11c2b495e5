package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ShotTotals are the raw sums over a filtered session set.
type ShotTotals struct {
	TotalSessions          int64 `json:"totalSessions"`
	FreeThrowsMade         int64 `json:"totalFreeThrowsMade"`
	FreeThrowsAttempted    int64 `json:"totalFreeThrowsAttempted"`
	ThreePointersMade      int64 `json:"totalThreePointersMade"`
	ThreePointersAttempted int64 `json:"totalThreePointersAttempted"`
}

// AggregateStats are derived totals and percentages, never persisted.
type AggregateStats struct {
	ShotTotals
	FreeThrowPercentage    float64 `json:"freeThrowPercentage"`
	ThreePointerPercentage float64 `json:"threePointerPercentage"`
	OverallPercentage      float64 `json:"overallPercentage"`
}

// DailyStats are per-day totals and percentages for trend charts.
type DailyStats struct {
	Date                   time.Time `json:"-"`
	FreeThrowsMade         int64     `json:"freeThrowsMade"`
	FreeThrowsAttempted    int64     `json:"freeThrowsAttempted"`
	ThreePointersMade      int64     `json:"threePointersMade"`
	ThreePointersAttempted int64     `json:"threePointersAttempted"`
	FreeThrowPercentage    float64   `json:"freeThrowPercentage"`
	ThreePointerPercentage float64   `json:"threePointerPercentage"`
	OverallPercentage      float64   `json:"overallPercentage"`
}

// UserStats are aggregate stats attributed to one user for comparisons.
type UserStats struct {
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
	AggregateStats
}

// Percentage computes made/attempted as a percentage rounded to one decimal
// place. Zero attempts yield 0, never NaN.
func Percentage(made, attempted int64) float64 {
	if attempted <= 0 {
		return 0
	}
	return math.Round(float64(made)/float64(attempted)*1000) / 10
}

// NewAggregateStats derives the three percentages from raw totals.
func NewAggregateStats(totals ShotTotals) AggregateStats {
	return AggregateStats{
		ShotTotals:             totals,
		FreeThrowPercentage:    Percentage(totals.FreeThrowsMade, totals.FreeThrowsAttempted),
		ThreePointerPercentage: Percentage(totals.ThreePointersMade, totals.ThreePointersAttempted),
		OverallPercentage: Percentage(
			totals.FreeThrowsMade+totals.ThreePointersMade,
			totals.FreeThrowsAttempted+totals.ThreePointersAttempted,
		),
	}
}

// NewDailyStats derives per-day percentages from one day's sums.
func NewDailyStats(date time.Time, ftMade, ftAttempted, tpMade, tpAttempted int64) DailyStats {
	return DailyStats{
		Date:                   date,
		FreeThrowsMade:         ftMade,
		FreeThrowsAttempted:    ftAttempted,
		ThreePointersMade:      tpMade,
		ThreePointersAttempted: tpAttempted,
		FreeThrowPercentage:    Percentage(ftMade, ftAttempted),
		ThreePointerPercentage: Percentage(tpMade, tpAttempted),
		OverallPercentage:      Percentage(ftMade+tpMade, ftAttempted+tpAttempted),
	}
}
