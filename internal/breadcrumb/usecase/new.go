package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"eventask/internal/breadcrumb"
	"eventask/pkg/log"
)

const (
	defaultMaxSessions = 10000
	defaultSessionTTL  = 30 * time.Minute
)

// Options configures session storage and label derivation.
type Options struct {
	MaxSessions int
	SessionTTL  time.Duration
	Routes      map[string]string
	QueryLabels map[string]string
}

// implUseCase is the private implementation of breadcrumb.UseCase.
type implUseCase struct {
	l        log.Logger
	mu       sync.Mutex // makes get-or-create of a session atomic
	sessions *expirable.LRU[string, *breadcrumb.Store]
	labels   *breadcrumb.LabelResolver
}

// New creates a new breadcrumb UseCase implementation. Sessions idle for
// longer than SessionTTL are evicted and their subscriptions closed.
func New(l log.Logger, opts Options) *implUseCase {
	size := opts.MaxSessions
	if size <= 0 {
		size = defaultMaxSessions
	}
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &implUseCase{
		l: l,
		sessions: expirable.NewLRU[string, *breadcrumb.Store](size, func(_ string, s *breadcrumb.Store) {
			s.Close()
		}, ttl),
		labels: breadcrumb.NewLabelResolver(opts.Routes, opts.QueryLabels),
	}
}
