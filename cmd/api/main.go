package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eventask/config"
	_ "eventask/docs" // Swagger docs
	calendarUC "eventask/internal/calendar/usecase"
	"eventask/internal/httpserver"
	"eventask/pkg/datemath"
	"eventask/pkg/gcalendar"
	"eventask/pkg/log"
	"eventask/pkg/sqlite"
)

// @title       EvenTask Planner API
// @description Calendar month grids with event overlay, event storage and per-session breadcrumb trails.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting EvenTask planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 4. Calendar timezone
	dateParser, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar client (optional)
	var calendarClient calendarUC.ExternalCalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Environment:    cfg.Environment.Name,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		DB:             db,
		DateParser:     dateParser,
		CalendarClient: calendarClient,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		GridCacheSize:  cfg.Calendar.GridCacheSize,
		Breadcrumb: httpserver.BreadcrumbConfig{
			MaxSessions: cfg.Breadcrumb.MaxSessions,
			SessionTTL:  cfg.Breadcrumb.SessionTTL,
			Routes:      cfg.Breadcrumb.Routes,
			QueryLabels: cfg.Breadcrumb.QueryLabels,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
