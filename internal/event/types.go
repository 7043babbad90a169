package event

import (
	"time"

	"eventask/internal/model"
)

// --- UseCase Inputs ---

type CreateEventInput struct {
	TaskID      string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	RRule       string
}

type ListEventsInput struct {
	From   time.Time // zero = unbounded
	To     time.Time // zero = unbounded
	TaskID string
	Limit  int
	Offset int
}

// UpdateEventInput is a partial update: nil fields keep their stored value.
type UpdateEventInput struct {
	ID          string
	TaskID      *string
	Title       *string
	Description *string
	Location    *string
	Start       *time.Time
	End         *time.Time
	AllDay      *bool
	RRule       *string
}

// --- UseCase Outputs ---

type CreateEventOutput struct {
	Event model.Event
}

type ListEventsOutput struct {
	Events []model.Event
	Total  int
	Limit  int
	Offset int
}

type DetailEventOutput struct {
	Event model.Event
}

type UpdateEventOutput struct {
	Event model.Event
}
