package domain_test

import (
	"testing"
	"time"

	"github.com/agarza/hoopstats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveRange_Periods(t *testing.T) {
	now := date("2024-06-10").Add(15 * time.Hour) // mid-afternoon, must truncate

	tests := []struct {
		name      string
		period    domain.Period
		wantStart string
		wantEnd   string
	}{
		{
			name:      "daily is today only",
			period:    domain.PeriodDaily,
			wantStart: "2024-06-10",
			wantEnd:   "2024-06-10",
		},
		{
			name:      "weekly reaches back seven days with no upper bound",
			period:    domain.PeriodWeekly,
			wantStart: "2024-06-03",
		},
		{
			name:      "monthly reaches back thirty days",
			period:    domain.PeriodMonthly,
			wantStart: "2024-05-11",
		},
		{
			name:      "yearly reaches back 365 days",
			period:    domain.PeriodYearly,
			wantStart: "2023-06-11",
		},
		{
			name:   "all is unbounded",
			period: domain.PeriodAll,
		},
		{
			name:   "unrecognized period falls back to unbounded",
			period: domain.Period("fortnightly"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ResolveRange(tt.period, nil, nil, now)

			if tt.wantStart == "" {
				assert.True(t, got.IsUnbounded())
				return
			}

			require.NotNil(t, got.Start)
			assert.Equal(t, date(tt.wantStart), *got.Start)

			if tt.wantEnd == "" {
				assert.Nil(t, got.End)
			} else {
				require.NotNil(t, got.End)
				assert.Equal(t, date(tt.wantEnd), *got.End)
			}
		})
	}
}

func TestResolveRange_ExplicitRangeOverridesPeriod(t *testing.T) {
	now := date("2024-06-10")
	start := date("2024-01-01")
	end := date("2024-01-31")

	got := domain.ResolveRange(domain.PeriodYearly, &start, &end, now)

	require.NotNil(t, got.Start)
	require.NotNil(t, got.End)
	assert.Equal(t, start, *got.Start)
	assert.Equal(t, end, *got.End)
}

func TestResolveRange_SingleBoundDoesNotOverride(t *testing.T) {
	now := date("2024-06-10")
	start := date("2024-01-01")

	// Only one explicit bound supplied: the period still applies.
	got := domain.ResolveRange(domain.PeriodWeekly, &start, nil, now)

	require.NotNil(t, got.Start)
	assert.Equal(t, date("2024-06-03"), *got.Start)
	assert.Nil(t, got.End)
}

func TestResolveRange_TruncatesToUTCDate(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-06-10 22:00 in New York is already 2024-06-11 in UTC.
	now := time.Date(2024, 6, 10, 22, 0, 0, 0, loc)

	got := domain.ResolveRange(domain.PeriodDaily, nil, nil, now)

	require.NotNil(t, got.Start)
	assert.Equal(t, date("2024-06-11"), *got.Start)
}
