package http

import (
	"time"

	"eventask/internal/event"
	"eventask/internal/model"
	"eventask/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	TaskID      string    `json:"task_id"`
	Title       string    `json:"title"       binding:"required,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Location    string    `json:"location"    binding:"max=255"`
	Start       time.Time `json:"start"       binding:"required"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"all_day"`
	RRule       string    `json:"rrule"`
}

func (r createReq) toInput() event.CreateEventInput {
	return event.CreateEventInput{
		TaskID:      r.TaskID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Start:       r.Start,
		End:         r.End,
		AllDay:      r.AllDay,
		RRule:       r.RRule,
	}
}

// ---

type listReq struct {
	From   string `form:"from"`
	To     string `form:"to"`
	TaskID string `form:"task_id"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`

	from, to time.Time
}

func (r *listReq) validate() error {
	var err error
	if r.From != "" {
		if r.from, err = time.Parse(time.RFC3339, r.From); err != nil {
			return errInvalidFilter
		}
	}
	if r.To != "" {
		if r.to, err = time.Parse(time.RFC3339, r.To); err != nil {
			return errInvalidFilter
		}
	}
	return nil
}

func (r listReq) toInput() event.ListEventsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return event.ListEventsInput{
		From:   r.from,
		To:     r.to,
		TaskID: r.TaskID,
		Limit:  limit,
		Offset: offset,
	}
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	TaskID      *string    `json:"task_id"`
	Title       *string    `json:"title"       binding:"omitempty,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Location    *string    `json:"location"    binding:"omitempty,max=255"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	AllDay      *bool      `json:"all_day"`
	RRule       *string    `json:"rrule"`
}

func (r updateReq) toInput() event.UpdateEventInput {
	return event.UpdateEventInput{
		ID:          r.ID,
		TaskID:      r.TaskID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Start:       r.Start,
		End:         r.End,
		AllDay:      r.AllDay,
		RRule:       r.RRule,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID          string            `json:"id"`
	TaskID      string            `json:"task_id,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Location    string            `json:"location,omitempty"`
	Start       time.Time         `json:"start"`
	End         time.Time         `json:"end"`
	AllDay      bool              `json:"all_day"`
	RRule       string            `json:"rrule,omitempty"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:          ev.ID,
		TaskID:      ev.TaskID,
		Title:       ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       ev.Start,
		End:         ev.End,
		AllDay:      ev.AllDay,
		RRule:       ev.RRule,
		CreatedAt:   response.DateTime(ev.CreatedAt),
		UpdatedAt:   response.DateTime(ev.UpdatedAt),
	}
}

type itemResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newItemResp(ev model.Event) itemResp {
	return itemResp{Event: newEventResp(ev)}
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newListResp(out event.ListEventsOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return listResp{
		Events: events,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
