package usecase

import (
	"context"
	"strings"

	"eventask/internal/breadcrumb"
)

// session returns the store of id, creating it when absent. Every access
// re-adds the store so the TTL counts from the last use.
func (uc *implUseCase) session(id string) *breadcrumb.Store {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions.Get(id)
	if !ok {
		// Get misses on expired entries the cleaner has not purged yet.
		// Remove fires the eviction callback so their watchers are closed
		// instead of being orphaned by the Add below.
		uc.sessions.Remove(id)
		s = breadcrumb.NewStore()
	}
	uc.sessions.Add(id, s)
	return s
}

// Navigate applies one navigation to the session trail.
func (uc *implUseCase) Navigate(ctx context.Context, input breadcrumb.NavigateInput) (breadcrumb.TrailOutput, error) {
	if input.SessionID == "" {
		return breadcrumb.TrailOutput{}, breadcrumb.ErrMissingSessionID
	}
	pathname := strings.TrimSpace(input.Pathname)
	if pathname == "" {
		return breadcrumb.TrailOutput{}, breadcrumb.ErrMissingPath
	}

	label := strings.TrimSpace(input.Label)
	if label == "" {
		label = uc.labels.Label(pathname, input.Search)
	}

	trail := uc.session(input.SessionID).Dispatch(breadcrumb.NavigateTo{
		Path:  breadcrumb.Path(pathname, input.Search),
		Label: label,
	})
	uc.l.Debugf(ctx, "breadcrumb.usecase.Navigate: session %s -> %d items", input.SessionID, len(trail))

	return breadcrumb.TrailOutput{SessionID: input.SessionID, Trail: trail}, nil
}

// Trail returns the session trail; an unknown session has an empty one.
func (uc *implUseCase) Trail(ctx context.Context, sessionID string) (breadcrumb.TrailOutput, error) {
	if sessionID == "" {
		return breadcrumb.TrailOutput{}, breadcrumb.ErrMissingSessionID
	}
	return breadcrumb.TrailOutput{SessionID: sessionID, Trail: uc.session(sessionID).State()}, nil
}

// Reset empties the session trail.
func (uc *implUseCase) Reset(ctx context.Context, sessionID string) (breadcrumb.TrailOutput, error) {
	if sessionID == "" {
		return breadcrumb.TrailOutput{}, breadcrumb.ErrMissingSessionID
	}
	trail := uc.session(sessionID).Dispatch(breadcrumb.Reset{})
	uc.l.Debugf(ctx, "breadcrumb.usecase.Reset: session %s", sessionID)
	return breadcrumb.TrailOutput{SessionID: sessionID, Trail: trail}, nil
}

// Subscribe watches the session trail. The channel is closed when ctx is
// done, cancel is called or the session expires.
func (uc *implUseCase) Subscribe(ctx context.Context, sessionID string) (<-chan breadcrumb.Trail, func(), error) {
	if sessionID == "" {
		return nil, nil, breadcrumb.ErrMissingSessionID
	}
	ch, cancel := uc.session(sessionID).Watch(ctx)
	return ch, cancel, nil
}

// Close drops every session, closing their stores and ending open watches.
func (uc *implUseCase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.sessions.Purge()
}
