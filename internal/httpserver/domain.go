package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	breadcrumbHTTP "eventask/internal/breadcrumb/delivery/http"
	breadcrumbUC "eventask/internal/breadcrumb/usecase"
	calendarHTTP "eventask/internal/calendar/delivery/http"
	calendarUC "eventask/internal/calendar/usecase"
	eventHTTP "eventask/internal/event/delivery/http"
	"eventask/internal/event/repository"
	eventRepo "eventask/internal/event/repository/sqlite"
	eventUC "eventask/internal/event/usecase"
	"eventask/internal/middleware"
)

// Adding a domain follows the same steps:
//  1. Create Repository
//  2. Create UseCase
//  3. Create HTTP Handler
//  4. Register Routes

// setupEventDomain registers /api/v1/events and returns the repository for
// domains reading events.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (repository.Repository, error) {
	repo, err := eventRepo.New(ctx, srv.db, srv.l)
	if err != nil {
		return nil, fmt.Errorf("event repository: %w", err)
	}

	uc := eventUC.New(repo, srv.l)
	h := eventHTTP.New(srv.l, uc)
	eventHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Event domain registered")
	return repo, nil
}

// setupCalendarDomain registers /api/v1/calendar.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, repo repository.Repository) error {
	uc, err := calendarUC.New(srv.l, repo, srv.dateParser, calendarUC.Options{
		External:      srv.calendarClient,
		CalendarID:    srv.calendarID,
		GridCacheSize: srv.gridCacheSize,
	})
	if err != nil {
		return fmt.Errorf("calendar usecase: %w", err)
	}

	h := calendarHTTP.New(srv.l, uc)
	calendarHTTP.RegisterRoutes(api, h, mw)

	if srv.calendarClient != nil {
		srv.l.Infof(ctx, "Calendar domain registered (Google Calendar %q merged)", srv.calendarID)
	} else {
		srv.l.Infof(ctx, "Calendar domain registered")
	}
	return nil
}

// setupBreadcrumbDomain registers /api/v1/breadcrumbs.
func (srv HTTPServer) setupBreadcrumbDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := breadcrumbUC.New(srv.l, breadcrumbUC.Options{
		MaxSessions: srv.breadcrumb.MaxSessions,
		SessionTTL:  srv.breadcrumb.SessionTTL,
		Routes:      srv.breadcrumb.Routes,
		QueryLabels: srv.breadcrumb.QueryLabels,
	})

	h := breadcrumbHTTP.New(srv.l, uc)
	breadcrumbHTTP.RegisterRoutes(api, h, mw)

	// Closing the sessions ends open streams on shutdown.
	srv.shutdown.add(uc.Close)

	srv.l.Infof(ctx, "Breadcrumb domain registered")
}
