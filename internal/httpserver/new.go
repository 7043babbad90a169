package httpserver

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	calendarUC "eventask/internal/calendar/usecase"
	"eventask/pkg/datemath"
	"eventask/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   int

	// Storage
	db *sql.DB

	// Calendar domain
	dateParser     *datemath.Parser
	calendarClient calendarUC.ExternalCalendar
	calendarID     string
	gridCacheSize  int

	// Breadcrumb domain
	breadcrumb BreadcrumbConfig

	shutdown *shutdownHooks
}

// shutdownHooks are run by http.Server when Shutdown begins. Long-lived
// handlers register here so they return instead of holding Shutdown open.
type shutdownHooks struct {
	fns []func()
}

func (h *shutdownHooks) add(fn func()) {
	h.fns = append(h.fns, fn)
}

// BreadcrumbConfig configures the breadcrumb session store.
type BreadcrumbConfig struct {
	MaxSessions int
	SessionTTL  time.Duration
	Routes      map[string]string
	QueryLabels map[string]string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	TrustedProxies []string
	Environment    string
	RequestsPerMin int

	DB *sql.DB

	DateParser     *datemath.Parser
	CalendarClient calendarUC.ExternalCalendar // optional
	CalendarID     string
	GridCacheSize  int

	Breadcrumb BreadcrumbConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		rateLimit:      cfg.RequestsPerMin,
		db:             cfg.DB,
		dateParser:     cfg.DateParser,
		calendarClient: cfg.CalendarClient,
		calendarID:     cfg.CalendarID,
		gridCacheSize:  cfg.GridCacheSize,
		breadcrumb:     cfg.Breadcrumb,
		shutdown:       &shutdownHooks{},
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.dateParser == nil {
		return errors.New("date parser is required")
	}
	return nil
}
