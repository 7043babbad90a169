package usecase

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"eventask/internal/event"
)

// coalesce returns *newVal when set, otherwise the existing value. Used for partial updates.
func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

// normalizeRRule strips an optional "RRULE:" prefix and surrounding whitespace.
func normalizeRRule(rule string) string {
	rule = strings.TrimSpace(rule)
	if len(rule) >= 6 && strings.EqualFold(rule[:6], "RRULE:") {
		rule = rule[6:]
	}
	return strings.ToUpper(rule)
}

// validate checks the business rules shared by Create and Update.
// A zero end is filled with start.
func (uc *implUseCase) validate(title string, start time.Time, end *time.Time, rule string) error {
	if strings.TrimSpace(title) == "" {
		return event.ErrEmptyTitle
	}
	if start.IsZero() {
		return event.ErrMissingStart
	}
	if end.IsZero() {
		*end = start
	}
	if end.Before(start) {
		return event.ErrInvalidTimeRange
	}
	if rule != "" {
		opt, err := rrule.StrToROption(rule)
		if err != nil || !event.SupportedFrequency(opt.Freq) {
			return event.ErrInvalidRRule
		}
	}
	return nil
}
