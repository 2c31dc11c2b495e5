package domain_test

import (
	"testing"
	"time"

	"github.com/agarza/hoopstats/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name      string
		made      int64
		attempted int64
		want      float64
	}{
		{name: "zero attempts yields zero", made: 0, attempted: 0, want: 0},
		{name: "made with zero attempts yields zero", made: 5, attempted: 0, want: 0},
		{name: "perfect line", made: 10, attempted: 10, want: 100},
		{name: "rounds down to one decimal", made: 1, attempted: 3, want: 33.3},
		{name: "rounds up to one decimal", made: 2, attempted: 3, want: 66.7},
		{name: "thirteen of fifteen", made: 13, attempted: 15, want: 86.7},
		{name: "exact decimal", made: 18, attempted: 30, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Percentage(tt.made, tt.attempted))
		})
	}
}

func TestNewAggregateStats(t *testing.T) {
	// Two sessions: ft 8/10 + 5/5, tp 2/5 + 3/10.
	stats := domain.NewAggregateStats(domain.ShotTotals{
		TotalSessions:          2,
		FreeThrowsMade:         13,
		FreeThrowsAttempted:    15,
		ThreePointersMade:      5,
		ThreePointersAttempted: 15,
	})

	assert.Equal(t, 86.7, stats.FreeThrowPercentage)
	assert.Equal(t, 33.3, stats.ThreePointerPercentage)
	assert.Equal(t, 60.0, stats.OverallPercentage)
}

func TestNewAggregateStats_ZeroTotals(t *testing.T) {
	stats := domain.NewAggregateStats(domain.ShotTotals{})

	assert.Equal(t, int64(0), stats.TotalSessions)
	assert.Equal(t, 0.0, stats.FreeThrowPercentage)
	assert.Equal(t, 0.0, stats.ThreePointerPercentage)
	assert.Equal(t, 0.0, stats.OverallPercentage)
}

func TestNewAggregateStats_CountsAreAdditive(t *testing.T) {
	// Percentages are not additive, but the underlying counts are: summing
	// two disjoint subsets and recomputing must match aggregating the union.
	left := domain.ShotTotals{TotalSessions: 1, FreeThrowsMade: 8, FreeThrowsAttempted: 10, ThreePointersMade: 2, ThreePointersAttempted: 5}
	right := domain.ShotTotals{TotalSessions: 1, FreeThrowsMade: 5, FreeThrowsAttempted: 5, ThreePointersMade: 3, ThreePointersAttempted: 10}

	union := domain.ShotTotals{
		TotalSessions:          left.TotalSessions + right.TotalSessions,
		FreeThrowsMade:         left.FreeThrowsMade + right.FreeThrowsMade,
		FreeThrowsAttempted:    left.FreeThrowsAttempted + right.FreeThrowsAttempted,
		ThreePointersMade:      left.ThreePointersMade + right.ThreePointersMade,
		ThreePointersAttempted: left.ThreePointersAttempted + right.ThreePointersAttempted,
	}

	fromParts := domain.NewAggregateStats(union)
	direct := domain.NewAggregateStats(domain.ShotTotals{
		TotalSessions: 2, FreeThrowsMade: 13, FreeThrowsAttempted: 15, ThreePointersMade: 5, ThreePointersAttempted: 15,
	})

	assert.Equal(t, direct, fromParts)
}

func TestNewDailyStats(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	stats := domain.NewDailyStats(day, 8, 10, 0, 0)

	assert.Equal(t, day, stats.Date)
	assert.Equal(t, 80.0, stats.FreeThrowPercentage)
	assert.Equal(t, 0.0, stats.ThreePointerPercentage)
	assert.Equal(t, 80.0, stats.OverallPercentage)
}
