package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventask/internal/event/repository"
	"eventask/internal/model"
	"eventask/pkg/datemath"
	"eventask/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct {
	warnings int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     { m.warnings++ }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warnings++ }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// rangeRepo serves a fixed event list from ListEventsInRange; other methods are unused.
type rangeRepo struct {
	repository.Repository
	events   []model.Event
	err      error
	from, to time.Time
}

func (r *rangeRepo) ListEventsInRange(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	r.from, r.to = from, to
	return r.events, r.err
}

type fakeExternal struct {
	events []gcalendar.Event
	err    error
	req    gcalendar.ListEventsRequest
}

func (f *fakeExternal) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.req = req
	return f.events, f.err
}

var errUnavailable = errors.New("calendar unavailable")

func newTestUseCase(t *testing.T, repo *rangeRepo, opts Options) (*implUseCase, *mockLogger) {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	l := &mockLogger{}
	uc, err := New(l, repo, parser, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return uc, l
}

func utc(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}
