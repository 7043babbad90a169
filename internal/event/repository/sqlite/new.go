package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"eventask/internal/event/repository"
	"eventask/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the event domain and applies its migrations.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("event/repository/sqlite: db is required")
	}
	r := &implRepository{db: db, l: l}
	if err := r.migrate(ctx); err != nil {
		return nil, fmt.Errorf("event/repository/sqlite: migrate: %w", err)
	}
	return r, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/sqlite.%s", method)
}

func (r *implRepository) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id          TEXT PRIMARY KEY,
			task_id     TEXT NOT NULL DEFAULT '',
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			location    TEXT NOT NULL DEFAULT '',
			start_at    INTEGER NOT NULL,
			end_at      INTEGER NOT NULL,
			all_day     INTEGER NOT NULL DEFAULT 0,
			rrule       TEXT NOT NULL DEFAULT '',
			created_at  INTEGER NOT NULL,
			updated_at  INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_start_at ON events(start_at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_task_id ON events(task_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_rrule ON events(rrule)`,
	}
	for _, m := range migrations {
		if _, err := r.db.ExecContext(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
