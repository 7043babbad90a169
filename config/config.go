package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // calendar.timezone must resolve in minimal containers

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	Database DatabaseConfig

	// EvenTask specifics
	Calendar       CalendarConfig
	GoogleCalendar GoogleCalendarConfig
	Breadcrumb     BreadcrumbConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TrustedProxies lists proxy IPs/CIDRs whose X-Forwarded-For is honoured.
	// Empty trusts none.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type DatabaseConfig struct {
	Path string // SQLite file, or ":memory:"
}

type CalendarConfig struct {
	Timezone      string
	GridCacheSize int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type BreadcrumbConfig struct {
	MaxSessions int
	SessionTTL  time.Duration
	Routes      map[string]string // path pattern -> label, e.g. "/tasks/:id": "Task Details"
	QueryLabels map[string]string // query param -> label prefix
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = viper.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Database.Path = viper.GetString("database.path")

	// Calendar
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.GridCacheSize = viper.GetInt("calendar.grid_cache_size")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Breadcrumb
	cfg.Breadcrumb.MaxSessions = viper.GetInt("breadcrumb.max_sessions")
	cfg.Breadcrumb.SessionTTL = viper.GetDuration("breadcrumb.session_ttl")
	// viper lowercases these map keys; the label resolver matches case-insensitively.
	cfg.Breadcrumb.Routes = viper.GetStringMapString("breadcrumb.routes")
	cfg.Breadcrumb.QueryLabels = viper.GetStringMapString("breadcrumb.query_labels")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port %d", cfg.HTTPServer.Port)
	}
	if _, err := time.LoadLocation(cfg.Calendar.Timezone); err != nil {
		return fmt.Errorf("invalid calendar.timezone %q: %w", cfg.Calendar.Timezone, err)
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 600)

	viper.SetDefault("database.path", "data/eventask.db")

	viper.SetDefault("calendar.timezone", "Asia/Ho_Chi_Minh")
	viper.SetDefault("calendar.grid_cache_size", 120)
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("breadcrumb.max_sessions", 10000)
	viper.SetDefault("breadcrumb.session_ttl", "30m")
	viper.SetDefault("breadcrumb.routes", map[string]string{
		"/tasks":         "Tasks",
		"/tasks/:id":     "Task Details",
		"/calendar":      "Calendar",
		"/events":        "Events",
		"/events/:id":    "Event Details",
		"/notifications": "Notifications",
		"/profile":       "Profile",
	})
	viper.SetDefault("breadcrumb.query_labels", map[string]string{
		"q": "Search",
	})
}
