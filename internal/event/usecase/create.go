package usecase

import (
	"context"

	"eventask/internal/event"
	repo "eventask/internal/event/repository"
)

// Create validates and persists a new Event.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateEventInput) (event.CreateEventOutput, error) {
	rule := normalizeRRule(input.RRule)
	end := input.End
	if err := uc.validate(input.Title, input.Start, &end, rule); err != nil {
		return event.CreateEventOutput{}, err
	}

	ev, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		TaskID:      input.TaskID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Start:       input.Start,
		End:         end,
		AllDay:      input.AllDay,
		RRule:       rule,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.CreateEventOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: event %s created (recurring=%t)", ev.ID, ev.IsRecurring())
	return event.CreateEventOutput{Event: ev}, nil
}
