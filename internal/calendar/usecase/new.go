package usecase

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"eventask/internal/calendar"
	"eventask/internal/event/repository"
	"eventask/pkg/datemath"
	"eventask/pkg/gcalendar"
	"eventask/pkg/log"
)

const (
	defaultGridCacheSize = 120
	// maxOccurrencesPerEvent caps the expansion of a single recurring series in one grid.
	maxOccurrencesPerEvent = 200
	// maxScannedOccurrences bounds the walk from a series' first instance to the grid.
	maxScannedOccurrences = 100000
)

// ExternalCalendar is a read-only source of events merged into the overlay.
// *gcalendar.Client satisfies it.
type ExternalCalendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Options configures the calendar use case. External may be nil.
type Options struct {
	External      ExternalCalendar
	CalendarID    string
	GridCacheSize int
}

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	parser     *datemath.Parser
	loc        *time.Location
	external   ExternalCalendar
	calendarID string
	grids      *lru.Cache[calendar.MonthInput, []calendar.Day]
	now        func() time.Time
}

// New creates a new calendar UseCase implementation. The parser's timezone is
// the local timezone used for bucketing events.
func New(l log.Logger, repo repository.Repository, parser *datemath.Parser, opts Options) (*implUseCase, error) {
	size := opts.GridCacheSize
	if size <= 0 {
		size = defaultGridCacheSize
	}
	grids, err := lru.New[calendar.MonthInput, []calendar.Day](size)
	if err != nil {
		return nil, fmt.Errorf("calendar grid cache: %w", err)
	}

	return &implUseCase{
		l:          l,
		repo:       repo,
		parser:     parser,
		loc:        parser.Location(),
		external:   opts.External,
		calendarID: opts.CalendarID,
		grids:      grids,
		now:        time.Now,
	}, nil
}
