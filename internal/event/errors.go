package event

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrEmptyTitle       = errors.New("event title is required")
	ErrMissingStart     = errors.New("event start is required")
	ErrInvalidTimeRange = errors.New("event end must not be before start")
	ErrInvalidRRule     = errors.New("invalid recurrence rule")
)
