package datemath_test

import (
	"testing"
	"time"

	"eventask/pkg/datemath"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{name: "January", year: 2023, month: 0, want: 31},
		{name: "February common year", year: 2023, month: 1, want: 28},
		{name: "February leap year", year: 2024, month: 1, want: 29},
		{name: "February century not leap", year: 1900, month: 1, want: 28},
		{name: "February 400-year leap", year: 2000, month: 1, want: 29},
		{name: "April", year: 2025, month: 3, want: 30},
		{name: "December", year: 2025, month: 11, want: 31},
		{name: "Month 12 normalizes to next January", year: 2025, month: 12, want: 31},
		{name: "Month -1 normalizes to previous December", year: 2025, month: -1, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name string
		from datemath.Date
		n    int
		want datemath.Date
	}{
		{name: "same month", from: datemath.Date{Year: 2024, Month: 5, Day: 10}, n: 5, want: datemath.Date{Year: 2024, Month: 5, Day: 15}},
		{name: "across leap day", from: datemath.Date{Year: 2024, Month: 1, Day: 28}, n: 1, want: datemath.Date{Year: 2024, Month: 1, Day: 29}},
		{name: "into March", from: datemath.Date{Year: 2024, Month: 1, Day: 29}, n: 1, want: datemath.Date{Year: 2024, Month: 2, Day: 1}},
		{name: "backwards across year", from: datemath.Date{Year: 2023, Month: 0, Day: 1}, n: -5, want: datemath.Date{Year: 2022, Month: 11, Day: 27}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.AddDays(tt.n); got != tt.want {
				t.Errorf("AddDays() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDate_WeekdayAndKey(t *testing.T) {
	d := datemath.Date{Year: 2024, Month: 1, Day: 1}
	if d.Weekday() != time.Thursday {
		t.Errorf("2024-02-01 weekday = %s, want Thursday", d.Weekday())
	}
	if d.Key() != "2024-02-01" {
		t.Errorf("Key() = %s", d.Key())
	}
	if d.EndOfMonth().Day != 29 {
		t.Errorf("EndOfMonth().Day = %d, want 29", d.EndOfMonth().Day)
	}
}

func TestDate_Compare(t *testing.T) {
	a := datemath.Date{Year: 2024, Month: 0, Day: 31}
	b := datemath.Date{Year: 2024, Month: 1, Day: 1}

	if !a.Before(b) || a.After(b) {
		t.Errorf("expected %s before %s", a.Key(), b.Key())
	}
	if a.Compare(a) != 0 {
		t.Errorf("expected equal compare")
	}
}

func TestFromTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 20:00 UTC is already the next day in UTC+7.
	ts := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)
	got := datemath.FromTime(ts, loc)
	want := datemath.Date{Year: 2025, Month: 5, Day: 15}
	if got != want {
		t.Errorf("FromTime() = %+v, want %+v", got, want)
	}

	if !want.Time(loc).Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, loc)) {
		t.Errorf("Time() mismatch")
	}
}
