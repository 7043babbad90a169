package model

import "time"

// EventSource identifies where an event came from.
type EventSource string

const (
	SourceLocal          EventSource = "local"
	SourceGoogleCalendar EventSource = "google_calendar"
)

// Event is a calendar event stored by the service. A non-empty RRule makes
// it the first occurrence of a recurring series.
type Event struct {
	ID          string
	TaskID      string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	RRule       string // RFC 5545 RRULE body, e.g. "FREQ=WEEKLY;BYDAY=MO"
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsRecurring reports whether the event carries a recurrence rule.
func (e Event) IsRecurring() bool {
	return e.RRule != ""
}

// Duration returns End - Start, or zero when End is unset.
func (e Event) Duration() time.Duration {
	if e.End.IsZero() || e.End.Before(e.Start) {
		return 0
	}
	return e.End.Sub(e.Start)
}
