package usecase

import (
	"context"

	"eventask/internal/event"
	repo "eventask/internal/event/repository"
)

// List returns a paginated list of Events, optionally bounded by a time range.
func (uc *implUseCase) List(ctx context.Context, input event.ListEventsInput) (event.ListEventsOutput, error) {
	if !input.From.IsZero() && !input.To.IsZero() && input.To.Before(input.From) {
		return event.ListEventsOutput{}, event.ErrInvalidTimeRange
	}

	events, total, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		From:   input.From,
		To:     input.To,
		TaskID: input.TaskID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListEventsOutput{}, err
	}

	return event.ListEventsOutput{
		Events: events,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
