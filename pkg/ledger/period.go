package ledger

import "time"

// Period selects the date window the period aggregates cover.
type Period string

const (
	PeriodThisMonth Period = "this_month"
	PeriodLastMonth Period = "last_month"
	PeriodThisYear  Period = "this_year"
	PeriodLastYear  Period = "last_year"
	PeriodCustom    Period = "custom"
	PeriodAll       Period = "all"
)

// PeriodRange resolves period to an inclusive [start, end] date window
// relative to now. Zero times mean unbounded; custom windows are resolved by
// the caller from its own parameters.
func PeriodRange(period Period, now time.Time) (start, end time.Time) {
	y, m, _ := now.Date()
	loc := now.Location()

	switch period {
	case PeriodThisMonth:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, -1)
	case PeriodLastMonth:
		end = time.Date(y, m, 1, 0, 0, 0, 0, loc).AddDate(0, 0, -1)
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, loc)
	case PeriodThisYear:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(y, time.December, 31, 0, 0, 0, 0, loc)
	case PeriodLastYear:
		start = time.Date(y-1, time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(y-1, time.December, 31, 0, 0, 0, 0, loc)
	}
	return start, end
}

// InRange reports whether date falls inside the inclusive window; zero
// bounds are open.
func InRange(date, start, end time.Time) bool {
	if !start.IsZero() && date.Before(start) {
		return false
	}
	if !end.IsZero() && date.After(end) {
		return false
	}
	return true
}
