package usecase

import (
	"context"
	"fmt"
	"strings"

	"eventask/internal/calendar"
)

// Resolve maps an anchor such as "today", "next month" or "in 2 months" to
// the month containing it. An empty anchor means the current month.
func (uc *implUseCase) Resolve(ctx context.Context, anchor string) (calendar.MonthInput, error) {
	anchor = strings.TrimSpace(anchor)
	if anchor == "" {
		anchor = "today"
	}

	d, err := uc.parser.ParseDate(anchor, uc.now())
	if err != nil {
		uc.l.Warnf(ctx, "calendar.usecase.Resolve: %q: %v", anchor, err)
		return calendar.MonthInput{}, fmt.Errorf("%w: %s", calendar.ErrInvalidAnchor, anchor)
	}

	return calendar.MonthInput{Month: d.Month, Year: d.Year}, nil
}
