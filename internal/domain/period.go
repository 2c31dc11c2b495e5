package domain

import "time"

// Period is a named date-range filter applied before aggregation.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodAll     Period = "all"
)

// DateRange is an inclusive date predicate against session_date. A nil bound
// means unbounded on that side.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsUnbounded reports whether the range places no constraint on the date.
func (r DateRange) IsUnbounded() bool {
	return r.Start == nil && r.End == nil
}

// ResolveRange turns a period token into a concrete inclusive date range,
// evaluated against "today" in UTC. An explicit startDate/endDate pair takes
// precedence over the period. Unrecognized periods resolve to an unbounded
// range rather than an error.
func ResolveRange(period Period, startDate, endDate *time.Time, now time.Time) DateRange {
	if startDate != nil && endDate != nil {
		start := truncateToDate(*startDate)
		end := truncateToDate(*endDate)
		return DateRange{Start: &start, End: &end}
	}

	today := truncateToDate(now)

	switch period {
	case PeriodDaily:
		return DateRange{Start: &today, End: &today}
	case PeriodWeekly:
		start := today.AddDate(0, 0, -7)
		return DateRange{Start: &start}
	case PeriodMonthly:
		start := today.AddDate(0, 0, -30)
		return DateRange{Start: &start}
	case PeriodYearly:
		start := today.AddDate(0, 0, -365)
		return DateRange{Start: &start}
	default:
		return DateRange{}
	}
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
