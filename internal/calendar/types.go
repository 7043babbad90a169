package calendar

import (
	"time"

	"eventask/internal/model"
	"eventask/pkg/datemath"
)

// GridSize is the fixed number of cells in a month grid (6 weeks).
const GridSize = 42

// DayType classifies a grid cell relative to the displayed month.
type DayType string

const (
	DayTypePrevious DayType = "PREVIOUS"
	DayTypeCurrent  DayType = "CURRENT"
	DayTypeNext     DayType = "NEXT"
)

// Day is one cell of the month grid. Month is zero-based.
type Day struct {
	Day     int
	DayName string
	Month   int
	Year    int
	Type    DayType
}

// Date returns the calendar date of the cell.
func (d Day) Date() datemath.Date {
	return datemath.Date{Year: d.Year, Month: d.Month, Day: d.Day}
}

// Key returns the YYYY-MM-DD bucket key of the cell.
func (d Day) Key() string {
	return d.Date().Key()
}

// Event is the slice of an event the overlay needs. Only Start is used for bucketing.
type Event struct {
	ID          string
	TaskID      string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Recurring   bool
	Source      model.EventSource
}

// DayWithEvents is a grid cell with the events starting on it, in source order.
type DayWithEvents struct {
	Day
	Events []Event
}

// --- UseCase Inputs ---

// MonthInput selects a month grid. Month is zero-based.
type MonthInput struct {
	Month int
	Year  int
}

// --- UseCase Outputs ---

type MonthOutput struct {
	Month int
	Year  int
	Days  []DayWithEvents
}

type ExportOutput struct {
	FileName string
	Content  []byte
}
