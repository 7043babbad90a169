package http

import (
	"time"

	"eventask/internal/calendar"
	"eventask/pkg/response"
)

// --- Request DTOs ---

// monthReq selects a month. Month is zero-based. Pointers distinguish
// "absent" from January / year zero.
type monthReq struct {
	Month  *int   `form:"month"`
	Year   *int   `form:"year"`
	Anchor string `form:"anchor"`
}

func (r monthReq) validate() error {
	if (r.Month == nil) != (r.Year == nil) {
		return errMonthWithoutYear
	}
	return nil
}

// explicit reports whether month and year were both given.
func (r monthReq) explicit() bool {
	return r.Month != nil && r.Year != nil
}

func (r monthReq) toInput() calendar.MonthInput {
	return calendar.MonthInput{Month: *r.Month, Year: *r.Year}
}

// --- Response DTOs ---

type eventResp struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id,omitempty"`
	Title     string    `json:"title"`
	Location  string    `json:"location,omitempty"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	AllDay    bool      `json:"all_day"`
	Recurring bool      `json:"recurring"`
	Source    string    `json:"source"`
}

type dayResp struct {
	Date    response.Date `json:"date" swaggertype:"string" example:"2025-06-15"`
	Day     int           `json:"day"`
	DayName string        `json:"day_name"`
	Month   int           `json:"month"`
	Year    int           `json:"year"`
	Type    string        `json:"type"`
	Events  []eventResp   `json:"events"`
}

type monthResp struct {
	Month int       `json:"month"`
	Year  int       `json:"year"`
	Days  []dayResp `json:"days"`
}

func (h *handler) newMonthResp(out calendar.MonthOutput) monthResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		events := make([]eventResp, len(d.Events))
		for j, ev := range d.Events {
			events[j] = eventResp{
				ID:        ev.ID,
				TaskID:    ev.TaskID,
				Title:     ev.Title,
				Location:  ev.Location,
				Start:     ev.Start,
				End:       ev.End,
				AllDay:    ev.AllDay,
				Recurring: ev.Recurring,
				Source:    string(ev.Source),
			}
		}
		days[i] = dayResp{
			Date:    response.Date(d.Date().Time(time.UTC)),
			Day:     d.Day.Day,
			DayName: d.DayName,
			Month:   d.Month,
			Year:    d.Year,
			Type:    string(d.Type),
			Events:  events,
		}
	}
	return monthResp{Month: out.Month, Year: out.Year, Days: days}
}
