package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	repo "eventask/internal/event/repository"
	"eventask/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory repository.Repository for use case tests.
type memRepo struct {
	events map[string]model.Event
	seq    int
	err    error
}

func newMemRepo() *memRepo {
	return &memRepo{events: make(map[string]model.Event)}
}

func (m *memRepo) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	if m.err != nil {
		return model.Event{}, m.err
	}
	m.seq++
	ev := model.Event{
		ID:          fmt.Sprintf("ev-%d", m.seq),
		TaskID:      opt.TaskID,
		Title:       opt.Title,
		Description: opt.Description,
		Location:    opt.Location,
		Start:       opt.Start,
		End:         opt.End,
		AllDay:      opt.AllDay,
		RRule:       opt.RRule,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.events[ev.ID] = ev
	return ev, nil
}

func (m *memRepo) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.Event, error) {
	if m.err != nil {
		return model.Event{}, m.err
	}
	return m.events[opt.ID], nil
}

func (m *memRepo) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var out []model.Event
	for _, ev := range m.events {
		if opt.TaskID != "" && ev.TaskID != opt.TaskID {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, len(out), nil
}

func (m *memRepo) ListEventsInRange(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	events, _, err := m.ListEvents(ctx, repo.ListEventsOptions{})
	return events, err
}

func (m *memRepo) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (model.Event, error) {
	if m.err != nil {
		return model.Event{}, m.err
	}
	ev, ok := m.events[opt.ID]
	if !ok {
		return model.Event{}, nil
	}
	ev.TaskID, ev.Title, ev.Description, ev.Location = opt.TaskID, opt.Title, opt.Description, opt.Location
	ev.Start, ev.End, ev.AllDay, ev.RRule = opt.Start, opt.End, opt.AllDay, opt.RRule
	ev.UpdatedAt = time.Now()
	m.events[opt.ID] = ev
	return ev, nil
}

func (m *memRepo) DeleteEvent(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.events, id)
	return nil
}
