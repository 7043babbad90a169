package repository

import (
	"context"
	"time"

	"eventask/internal/model"
)

// Repository is the composed interface for the event data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for the Event entity.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, int, error)
	// ListEventsInRange returns events overlapping [from, to) and every
	// recurring series that starts before to.
	ListEventsInRange(ctx context.Context, from, to time.Time) ([]model.Event, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
