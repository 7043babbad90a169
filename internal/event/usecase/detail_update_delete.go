package usecase

import (
	"context"

	"eventask/internal/event"
	repo "eventask/internal/event/repository"
)

// Detail retrieves a single Event by ID. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (event.DetailEventOutput, error) {
	ev, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneEvent: %v", err)
		return event.DetailEventOutput{}, err
	}
	if ev.ID == "" {
		return event.DetailEventOutput{}, event.ErrEventNotFound
	}
	return event.DetailEventOutput{Event: ev}, nil
}

// Update applies a partial update to an existing Event. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input event.UpdateEventInput) (event.UpdateEventOutput, error) {
	existing, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneEvent: %v", err)
		return event.UpdateEventOutput{}, err
	}
	if existing.ID == "" {
		return event.UpdateEventOutput{}, event.ErrEventNotFound
	}

	opt := repo.UpdateEventOptions{
		ID:          input.ID,
		TaskID:      coalesce(input.TaskID, existing.TaskID),
		Title:       coalesce(input.Title, existing.Title),
		Description: coalesce(input.Description, existing.Description),
		Location:    coalesce(input.Location, existing.Location),
		Start:       coalesce(input.Start, existing.Start),
		End:         coalesce(input.End, existing.End),
		AllDay:      coalesce(input.AllDay, existing.AllDay),
		RRule:       normalizeRRule(coalesce(input.RRule, existing.RRule)),
	}
	// Moving only the start keeps the event's duration.
	if input.Start != nil && input.End == nil {
		opt.End = opt.Start.Add(existing.Duration())
	}
	if err := uc.validate(opt.Title, opt.Start, &opt.End, opt.RRule); err != nil {
		return event.UpdateEventOutput{}, err
	}

	ev, err := uc.repo.UpdateEvent(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEvent: %v", err)
		return event.UpdateEventOutput{}, err
	}
	if ev.ID == "" {
		return event.UpdateEventOutput{}, event.ErrEventNotFound
	}
	return event.UpdateEventOutput{Event: ev}, nil
}

// Delete removes an Event by ID. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneEvent: %v", err)
		return err
	}
	if existing.ID == "" {
		return event.ErrEventNotFound
	}
	if err := uc.repo.DeleteEvent(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}
	return nil
}
