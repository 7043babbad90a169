package repository

import "time"

// CreateEventOptions holds parameters for inserting a new Event.
type CreateEventOptions struct {
	TaskID      string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	RRule       string
}

// GetOneEventOptions holds filter parameters for fetching a single Event.
type GetOneEventOptions struct {
	ID string
}

// ListEventsOptions holds filter and pagination parameters for listing Events.
// Zero From/To leave that side of the range open. Results are ordered by
// start, then creation time.
type ListEventsOptions struct {
	From   time.Time
	To     time.Time
	TaskID string
	Limit  int
	Offset int
}

// UpdateEventOptions carries the full new state of an Event.
type UpdateEventOptions struct {
	ID          string
	TaskID      string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	RRule       string
}
