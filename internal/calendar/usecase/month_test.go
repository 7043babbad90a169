package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"eventask/internal/calendar"
	"eventask/internal/model"
	"eventask/pkg/gcalendar"
)

// June 2025 grid runs from Monday May 26 to Sunday July 6.
var june2025 = calendar.MonthInput{Month: 5, Year: 2025}

// eventsByKey flattens the overlay into date key -> event titles, skipping empty days.
func eventsByKey(days []calendar.DayWithEvents) map[string][]string {
	out := make(map[string][]string)
	for _, d := range days {
		for _, ev := range d.Events {
			out[d.Key()] = append(out[d.Key()], ev.Title)
		}
	}
	return out
}

func TestMonth_Validation(t *testing.T) {
	uc, _ := newTestUseCase(t, &rangeRepo{}, Options{})

	tests := []struct {
		name    string
		input   calendar.MonthInput
		wantErr error
	}{
		{name: "month below range", input: calendar.MonthInput{Month: -1, Year: 2025}, wantErr: calendar.ErrInvalidMonth},
		{name: "month above range", input: calendar.MonthInput{Month: 12, Year: 2025}, wantErr: calendar.ErrInvalidMonth},
		{name: "year zero", input: calendar.MonthInput{Month: 0, Year: 0}, wantErr: calendar.ErrInvalidYear},
		{name: "valid", input: calendar.MonthInput{Month: 0, Year: 2025}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Month(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Month() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMonth_OverlaysStoredEvents(t *testing.T) {
	repo := &rangeRepo{events: []model.Event{
		{ID: "a", Title: "Review", Start: utc(2025, 6, 15, 10, 0), End: utc(2025, 6, 15, 11, 0)},
		{ID: "b", Title: "Offsite", Start: utc(2025, 7, 2, 9, 0), End: utc(2025, 7, 2, 17, 0)},
	}}
	uc, _ := newTestUseCase(t, repo, Options{})

	out, err := uc.Month(context.Background(), june2025)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if len(out.Days) != calendar.GridSize {
		t.Fatalf("len(Days) = %d", len(out.Days))
	}

	want := map[string][]string{
		"2025-06-15": {"Review"},
		"2025-07-02": {"Offsite"},
	}
	if diff := cmp.Diff(want, eventsByKey(out.Days)); diff != "" {
		t.Errorf("overlay mismatch (-want +got):\n%s", diff)
	}

	if !repo.from.Equal(utc(2025, 5, 26, 0, 0)) || !repo.to.Equal(utc(2025, 7, 7, 0, 0)) {
		t.Errorf("queried range [%s, %s)", repo.from, repo.to)
	}
	for _, d := range out.Days {
		if d.Events == nil {
			t.Fatalf("day %s has nil events", d.Key())
		}
	}
}

func TestMonth_ExpandsWeeklyRecurrence(t *testing.T) {
	repo := &rangeRepo{events: []model.Event{{
		ID:    "gym",
		Title: "Gym",
		Start: utc(2025, 6, 2, 18, 0),
		End:   utc(2025, 6, 2, 19, 0),
		RRule: "FREQ=WEEKLY;BYDAY=MO",
	}}}
	uc, _ := newTestUseCase(t, repo, Options{})

	out, err := uc.Month(context.Background(), june2025)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}

	// May 26 precedes the series start; every later Monday in the grid matches.
	want := map[string][]string{
		"2025-06-02": {"Gym"},
		"2025-06-09": {"Gym"},
		"2025-06-16": {"Gym"},
		"2025-06-23": {"Gym"},
		"2025-06-30": {"Gym"},
	}
	if diff := cmp.Diff(want, eventsByKey(out.Days)); diff != "" {
		t.Errorf("recurrence mismatch (-want +got):\n%s", diff)
	}

	for _, d := range out.Days {
		for _, ev := range d.Events {
			if ev.ID != "gym" || !ev.Recurring || ev.End.Sub(ev.Start) != time.Hour {
				t.Errorf("unexpected occurrence: %+v", ev)
			}
		}
	}
}

func TestMonth_ExternalCalendar(t *testing.T) {
	stored := []model.Event{{ID: "a", Title: "Local", Start: utc(2025, 6, 10, 8, 0), End: utc(2025, 6, 10, 9, 0)}}

	t.Run("merged after local events", func(t *testing.T) {
		ext := &fakeExternal{events: []gcalendar.Event{
			{ID: "g1", Summary: "Remote", StartTime: utc(2025, 6, 10, 12, 0), EndTime: utc(2025, 6, 10, 13, 0)},
		}}
		uc, _ := newTestUseCase(t, &rangeRepo{events: stored}, Options{External: ext, CalendarID: "team"})

		out, err := uc.Month(context.Background(), june2025)
		if err != nil {
			t.Fatalf("Month: %v", err)
		}
		if diff := cmp.Diff(map[string][]string{"2025-06-10": {"Local", "Remote"}}, eventsByKey(out.Days)); diff != "" {
			t.Errorf("overlay mismatch (-want +got):\n%s", diff)
		}
		if ext.req.CalendarID != "team" || !ext.req.TimeMin.Equal(utc(2025, 5, 26, 0, 0)) {
			t.Errorf("unexpected external request: %+v", ext.req)
		}
		for _, ev := range out.Days[15].Events {
			if ev.Title == "Remote" && ev.Source != model.SourceGoogleCalendar {
				t.Errorf("remote event source = %q", ev.Source)
			}
		}
	})

	t.Run("failure degrades the overlay", func(t *testing.T) {
		ext := &fakeExternal{err: errUnavailable}
		uc, l := newTestUseCase(t, &rangeRepo{events: stored}, Options{External: ext})

		out, err := uc.Month(context.Background(), june2025)
		if err != nil {
			t.Fatalf("Month should not fail when the external calendar does: %v", err)
		}
		if len(out.Days) != calendar.GridSize {
			t.Errorf("len(Days) = %d", len(out.Days))
		}
		if diff := cmp.Diff(map[string][]string{"2025-06-10": {"Local"}}, eventsByKey(out.Days)); diff != "" {
			t.Errorf("overlay mismatch (-want +got):\n%s", diff)
		}
		if l.warnings == 0 {
			t.Error("expected the failure to be logged")
		}
	})
}

func TestMonth_RepositoryError(t *testing.T) {
	repoErr := errors.New("db closed")
	uc, _ := newTestUseCase(t, &rangeRepo{err: repoErr}, Options{})

	if _, err := uc.Month(context.Background(), june2025); !errors.Is(err, repoErr) {
		t.Errorf("Month() error = %v, want %v", err, repoErr)
	}
}

func TestMonth_GridIsMemoized(t *testing.T) {
	uc, _ := newTestUseCase(t, &rangeRepo{}, Options{GridCacheSize: 2})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := uc.Month(ctx, june2025); err != nil {
			t.Fatalf("Month: %v", err)
		}
	}
	if got := uc.grids.Len(); got != 1 {
		t.Errorf("cached grids = %d, want 1", got)
	}

	for m := 0; m < 4; m++ {
		if _, err := uc.Month(ctx, calendar.MonthInput{Month: m, Year: 2026}); err != nil {
			t.Fatalf("Month: %v", err)
		}
	}
	if got := uc.grids.Len(); got != 2 {
		t.Errorf("cached grids = %d, want cache bounded at 2", got)
	}
}

func TestMonth_BoundsRecurrenceExpansion(t *testing.T) {
	t.Run("secondly series shows only its first instance", func(t *testing.T) {
		repo := &rangeRepo{events: []model.Event{{
			ID:    "tick",
			Title: "Tick",
			Start: utc(2025, 6, 3, 9, 0),
			End:   utc(2025, 6, 3, 9, 0),
			RRule: "FREQ=SECONDLY",
		}}}
		uc, l := newTestUseCase(t, repo, Options{})

		out, err := uc.Month(context.Background(), june2025)
		if err != nil {
			t.Fatalf("Month: %v", err)
		}
		if diff := cmp.Diff(map[string][]string{"2025-06-03": {"Tick"}}, eventsByKey(out.Days)); diff != "" {
			t.Errorf("overlay mismatch (-want +got):\n%s", diff)
		}
		if l.warnings == 0 {
			t.Error("expected the unsupported frequency to be logged")
		}
	})

	t.Run("secondly series outside the grid adds nothing", func(t *testing.T) {
		repo := &rangeRepo{events: []model.Event{{
			ID:    "tick",
			Title: "Tick",
			Start: utc(2023, 1, 1, 0, 0),
			End:   utc(2023, 1, 1, 0, 0),
			RRule: "FREQ=SECONDLY",
		}}}
		uc, _ := newTestUseCase(t, repo, Options{})

		started := time.Now()
		out, err := uc.Month(context.Background(), calendar.MonthInput{Month: 0, Year: 2024})
		if err != nil {
			t.Fatalf("Month: %v", err)
		}
		if got := eventsByKey(out.Days); len(got) != 0 {
			t.Errorf("overlay = %v, want empty", got)
		}
		if elapsed := time.Since(started); elapsed > time.Second {
			t.Errorf("Month took %s", elapsed)
		}
	})

	t.Run("hourly series is capped per grid", func(t *testing.T) {
		repo := &rangeRepo{events: []model.Event{{
			ID:    "ping",
			Title: "Ping",
			Start: utc(2025, 6, 1, 0, 0),
			End:   utc(2025, 6, 1, 0, 15),
			RRule: "FREQ=HOURLY",
		}}}
		uc, l := newTestUseCase(t, repo, Options{})

		out, err := uc.Month(context.Background(), june2025)
		if err != nil {
			t.Fatalf("Month: %v", err)
		}
		var n int
		for _, d := range out.Days {
			n += len(d.Events)
		}
		if n != maxOccurrencesPerEvent {
			t.Errorf("occurrences = %d, want %d", n, maxOccurrencesPerEvent)
		}
		// 200 hourly instances from June 1 end on June 9.
		if got := len(out.Days[6].Events); got != 24 {
			t.Errorf("June 1 occurrences = %d, want 24", got)
		}
		if l.warnings == 0 {
			t.Error("expected the cap to be logged")
		}
	})

	t.Run("old hourly series still reaches the grid", func(t *testing.T) {
		repo := &rangeRepo{events: []model.Event{{
			ID:    "ping",
			Title: "Ping",
			Start: utc(2022, 1, 1, 0, 30),
			End:   utc(2022, 1, 1, 0, 45),
			RRule: "FREQ=HOURLY;INTERVAL=6",
		}}}
		uc, _ := newTestUseCase(t, repo, Options{})

		out, err := uc.Month(context.Background(), june2025)
		if err != nil {
			t.Fatalf("Month: %v", err)
		}
		// 42 grid days at four instances a day.
		var n int
		for _, d := range out.Days {
			if len(d.Events) != 4 {
				t.Fatalf("day %s has %d occurrences, want 4", d.Key(), len(d.Events))
			}
			n += len(d.Events)
		}
		if n != 168 {
			t.Errorf("occurrences = %d, want 168", n)
		}
		if first := out.Days[0].Events[0].Start; !first.Equal(utc(2025, 5, 26, 0, 30)) {
			t.Errorf("first occurrence = %s", first)
		}
	})
}
