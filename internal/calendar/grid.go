package calendar

import (
	"time"

	"eventask/pkg/datemath"
)

// Compute builds the 42-cell grid for a zero-based month. Leading cells from
// the previous month number floor(extra/2); the odd leftover goes to the
// trailing run.
func Compute(month, year int) []Day {
	first := datemath.NewDate(year, month, 1)
	last := first.EndOfMonth()

	extraDays := GridSize - last.Day
	start := first.AddDays(-(extraDays / 2))

	days := make([]Day, GridSize)
	for i := range days {
		d := start.AddDays(i)

		typ := DayTypeCurrent
		switch {
		case d.Before(first):
			typ = DayTypePrevious
		case d.After(last):
			typ = DayTypeNext
		}

		days[i] = Day{
			Day:     d.Day,
			DayName: d.Weekday().String(),
			Month:   d.Month,
			Year:    d.Year,
			Type:    typ,
		}
	}
	return days
}

// GridRange returns the half-open interval [first cell 00:00, day after last cell 00:00) in loc.
func GridRange(days []Day, loc *time.Location) (time.Time, time.Time) {
	if len(days) == 0 {
		return time.Time{}, time.Time{}
	}
	from := days[0].Date().Time(loc)
	to := days[len(days)-1].Date().AddDays(1).Time(loc)
	return from, to
}
