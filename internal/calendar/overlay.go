package calendar

import (
	"time"

	"eventask/pkg/datemath"
)

// GroupByDate buckets events by the YYYY-MM-DD of their start in loc,
// keeping input order within each bucket.
func GroupByDate(events []Event, loc *time.Location) map[string][]Event {
	buckets := make(map[string][]Event)
	for _, e := range events {
		key := datemath.FromTime(e.Start, loc).Key()
		buckets[key] = append(buckets[key], e)
	}
	return buckets
}

// Overlay attaches to every day the bucket of events starting on it.
// Days without events get an empty, non-nil slice.
func Overlay(days []Day, events []Event, loc *time.Location) []DayWithEvents {
	buckets := GroupByDate(events, loc)

	out := make([]DayWithEvents, len(days))
	for i, d := range days {
		evs := buckets[d.Key()]
		if evs == nil {
			evs = []Event{}
		}
		out[i] = DayWithEvents{Day: d, Events: evs}
	}
	return out
}
