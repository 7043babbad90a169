package usecase

import (
	"context"
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"

	"eventask/internal/calendar"
)

const productID = "-//EvenTask//Calendar Export//EN"

// ExportICS renders every event of the month grid as a VCALENDAR. Recurring
// series are exported as their expanded occurrences, so no RRULE is written.
func (uc *implUseCase) ExportICS(ctx context.Context, input calendar.MonthInput) (calendar.ExportOutput, error) {
	out, err := uc.Month(ctx, input)
	if err != nil {
		return calendar.ExportOutput{}, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(fmt.Sprintf("EvenTask %04d-%02d", input.Year, input.Month+1))
	cal.SetXWRTimezone(uc.loc.String())

	stamp := uc.now().UTC()
	var count int
	for _, day := range out.Days {
		for _, ev := range day.Events {
			vevent := cal.AddEvent(occurrenceUID(ev))
			vevent.SetDtStampTime(stamp)
			vevent.SetSummary(ev.Title)
			if ev.AllDay {
				start, end := ev.Start.In(uc.loc), ev.End.In(uc.loc)
				if !end.After(start) {
					end = start.AddDate(0, 0, 1)
				}
				vevent.SetAllDayStartAt(start)
				vevent.SetAllDayEndAt(end)
			} else {
				vevent.SetStartAt(ev.Start)
				vevent.SetEndAt(ev.End)
			}
			if ev.Description != "" {
				vevent.SetDescription(ev.Description)
			}
			if ev.Location != "" {
				vevent.SetLocation(ev.Location)
			}
			count++
		}
	}

	uc.l.Infof(ctx, "calendar.usecase.ExportICS: exported %d events for %04d-%02d", count, input.Year, input.Month+1)
	return calendar.ExportOutput{
		FileName: fmt.Sprintf("eventask-%04d-%02d.ics", input.Year, input.Month+1),
		Content:  []byte(cal.Serialize()),
	}, nil
}

// occurrenceUID keeps UIDs unique when one series yields several occurrences.
func occurrenceUID(ev calendar.Event) string {
	var b strings.Builder
	b.WriteString(ev.ID)
	if ev.Recurring {
		b.WriteString("-")
		b.WriteString(ev.Start.UTC().Format("20060102T150405Z"))
	}
	b.WriteString("@")
	b.WriteString(string(ev.Source))
	b.WriteString(".eventask")
	return b.String()
}
