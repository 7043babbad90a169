package http

import (
	"time"

	"eventask/internal/breadcrumb"
	"eventask/pkg/log"
)

const defaultKeepAlive = 25 * time.Second

type handler struct {
	l         log.Logger
	uc        breadcrumb.UseCase
	keepAlive time.Duration
}

// New creates a new HTTP handler for breadcrumb sessions.
func New(l log.Logger, uc breadcrumb.UseCase) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		keepAlive: defaultKeepAlive,
	}
}
