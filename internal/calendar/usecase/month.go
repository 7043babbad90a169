package usecase

import (
	"context"
	"time"

	"github.com/teambition/rrule-go"

	"eventask/internal/calendar"
	"eventask/internal/event"
	"eventask/internal/model"
	"eventask/pkg/gcalendar"
)

// Month returns the 42-day grid of the requested month with local, recurring
// and external events overlaid. An unavailable external calendar degrades the
// overlay instead of failing the request.
func (uc *implUseCase) Month(ctx context.Context, input calendar.MonthInput) (calendar.MonthOutput, error) {
	if err := validateMonth(input); err != nil {
		return calendar.MonthOutput{}, err
	}

	days := uc.grid(input)
	events, err := uc.collectEvents(ctx, days)
	if err != nil {
		return calendar.MonthOutput{}, err
	}

	return calendar.MonthOutput{
		Month: input.Month,
		Year:  input.Year,
		Days:  calendar.Overlay(days, events, uc.loc),
	}, nil
}

func validateMonth(input calendar.MonthInput) error {
	if input.Month < 0 || input.Month > 11 {
		return calendar.ErrInvalidMonth
	}
	if input.Year < 1 || input.Year > 9999 {
		return calendar.ErrInvalidYear
	}
	return nil
}

// grid returns the memoized grid. Cached slices are shared and must not be mutated.
func (uc *implUseCase) grid(input calendar.MonthInput) []calendar.Day {
	if days, ok := uc.grids.Get(input); ok {
		return days
	}
	days := calendar.Compute(input.Month, input.Year)
	uc.grids.Add(input, days)
	return days
}

// collectEvents gathers every event overlapping the grid: stored events,
// expanded occurrences of stored recurring series, then external events.
func (uc *implUseCase) collectEvents(ctx context.Context, days []calendar.Day) ([]calendar.Event, error) {
	from, to := calendar.GridRange(days, uc.loc)

	stored, err := uc.repo.ListEventsInRange(ctx, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.collectEvents: ListEventsInRange: %v", err)
		return nil, err
	}

	events := make([]calendar.Event, 0, len(stored))
	for _, ev := range stored {
		if !ev.IsRecurring() {
			events = append(events, fromModel(ev, ev.Start, ev.End))
			continue
		}
		events = append(events, uc.expand(ctx, ev, from, to)...)
	}

	if uc.external != nil {
		external, err := uc.external.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: uc.calendarID,
			TimeMin:    from,
			TimeMax:    to,
			Location:   uc.loc,
		})
		if err != nil {
			uc.l.Warnf(ctx, "calendar.usecase.collectEvents: external calendar unavailable: %v", err)
		} else {
			for _, ev := range external {
				events = append(events, fromExternal(ev))
			}
		}
	}

	return events, nil
}

// expand returns the occurrences of a recurring event that overlap [from, to).
// The rule is evaluated in the local timezone so BYDAY matches local weekdays.
// Series finer than hourly are shown as their first instance only.
func (uc *implUseCase) expand(ctx context.Context, ev model.Event, from, to time.Time) []calendar.Event {
	r, err := rrule.StrToRRule(ev.RRule)
	if err != nil {
		uc.l.Warnf(ctx, "calendar.usecase.expand: event %s has invalid rrule %q: %v", ev.ID, ev.RRule, err)
		return firstInstance(ev, from, to)
	}
	if !event.SupportedFrequency(r.OrigOptions.Freq) {
		uc.l.Warnf(ctx, "calendar.usecase.expand: event %s has unsupported frequency %v", ev.ID, r.OrigOptions.Freq)
		return firstInstance(ev, from, to)
	}
	r.DTStart(ev.Start.In(uc.loc))

	dur := ev.Duration()
	next := r.Iterator()
	var out []calendar.Event
	for scanned := 0; ; scanned++ {
		if scanned == maxScannedOccurrences {
			uc.l.Warnf(ctx, "calendar.usecase.expand: event %s stopped after scanning %d occurrences", ev.ID, scanned)
			return out
		}
		start, ok := next()
		if !ok || !start.Before(to) {
			return out
		}
		end := start.Add(dur)
		if !overlaps(start, end, from, to) {
			continue
		}
		if len(out) == maxOccurrencesPerEvent {
			uc.l.Warnf(ctx, "calendar.usecase.expand: event %s capped at %d occurrences", ev.ID, maxOccurrencesPerEvent)
			return out
		}
		occ := fromModel(ev, start, end)
		occ.Recurring = true
		out = append(out, occ)
	}
}

// firstInstance is the stored instance of a series whose rule cannot be expanded.
func firstInstance(ev model.Event, from, to time.Time) []calendar.Event {
	if !overlaps(ev.Start, ev.End, from, to) {
		return nil
	}
	return []calendar.Event{fromModel(ev, ev.Start, ev.End)}
}

// overlaps reports whether [start, end) meets [from, to). A zero-length
// event overlaps when its start lies inside the range.
func overlaps(start, end, from, to time.Time) bool {
	if !start.Before(to) {
		return false
	}
	return !start.Before(from) || end.After(from)
}

func fromModel(ev model.Event, start, end time.Time) calendar.Event {
	return calendar.Event{
		ID:          ev.ID,
		TaskID:      ev.TaskID,
		Title:       ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       start,
		End:         end,
		AllDay:      ev.AllDay,
		Recurring:   ev.IsRecurring(),
		Source:      model.SourceLocal,
	}
}

func fromExternal(ev gcalendar.Event) calendar.Event {
	return calendar.Event{
		ID:          ev.ID,
		Title:       ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       ev.StartTime,
		End:         ev.EndTime,
		AllDay:      ev.AllDay,
		Recurring:   ev.Recurring,
		Source:      model.SourceGoogleCalendar,
	}
}
