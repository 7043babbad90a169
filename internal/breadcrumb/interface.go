package breadcrumb

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Navigate(ctx context.Context, input NavigateInput) (TrailOutput, error)
	Trail(ctx context.Context, sessionID string) (TrailOutput, error)
	Reset(ctx context.Context, sessionID string) (TrailOutput, error)
	// Subscribe streams the session's trail changes until ctx is done or cancel is called.
	Subscribe(ctx context.Context, sessionID string) (<-chan Trail, func(), error)
}
