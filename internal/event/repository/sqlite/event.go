package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	repo "eventask/internal/event/repository"
	"eventask/internal/model"
)

const eventColumns = `id, task_id, title, description, location, start_at, end_at, all_day, rrule, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	now := time.Now().UTC()
	ev := model.Event{
		ID:          uuid.NewString(),
		TaskID:      opt.TaskID,
		Title:       opt.Title,
		Description: opt.Description,
		Location:    opt.Location,
		Start:       opt.Start,
		End:         opt.End,
		AllDay:      opt.AllDay,
		RRule:       opt.RRule,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	const query = `
		INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		ev.ID, ev.TaskID, ev.Title, ev.Description, ev.Location,
		toUnix(ev.Start), toUnix(ev.End), ev.AllDay, ev.RRule,
		toUnix(ev.CreatedAt), toUnix(ev.UpdatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}
	return r.normalize(ev), nil
}

// GetOneEvent retrieves a single Event by ID.
// Returns zero-value Event (ID == "") when not found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = ? LIMIT 1`, eventColumns)

	ev, err := scanEvent(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.Event{}, repo.ErrFailedToGet
	}
	return ev, nil
}

// ListEvents returns a paginated list of Events and the total count.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, int, error) {
	// 1. Count total (without pagination)
	where, whereArgs := r.buildWhere(opt)
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM events %s`, eventColumns, mods)
	events, err := r.queryEvents(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return events, total, nil
}

// ListEventsInRange returns events overlapping [from, to) plus recurring series starting before to.
func (r *implRepository) ListEventsInRange(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE (rrule = '' AND start_at < ? AND (end_at > ? OR start_at >= ?))
		   OR (rrule <> '' AND start_at < ?)
		ORDER BY start_at ASC, created_at ASC`, eventColumns)

	events, err := r.queryEvents(ctx, query, toUnix(to), toUnix(from), toUnix(from), toUnix(to))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEventsInRange"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

// UpdateEvent updates an Event by ID and returns the updated entity.
// Returns zero-value Event when the row does not exist.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (model.Event, error) {
	const query = `
		UPDATE events
		SET task_id = ?, title = ?, description = ?, location = ?,
		    start_at = ?, end_at = ?, all_day = ?, rrule = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.TaskID, opt.Title, opt.Description, opt.Location,
		toUnix(opt.Start), toUnix(opt.End), opt.AllDay, opt.RRule,
		toUnix(time.Now()), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return model.Event{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Event{}, nil
	}
	return r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: opt.ID})
}

// DeleteEvent removes an Event by ID.
func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	const query = `DELETE FROM events WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) queryEvents(ctx context.Context, query string, args ...any) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// normalize round-trips timestamps through the stored representation.
func (r *implRepository) normalize(ev model.Event) model.Event {
	ev.Start = fromUnix(toUnix(ev.Start))
	ev.End = fromUnix(toUnix(ev.End))
	ev.CreatedAt = fromUnix(toUnix(ev.CreatedAt))
	ev.UpdatedAt = fromUnix(toUnix(ev.UpdatedAt))
	return ev
}

func scanEvent(s rowScanner) (model.Event, error) {
	var (
		ev                                   model.Event
		startAt, endAt, createdAt, updatedAt int64
	)
	err := s.Scan(
		&ev.ID, &ev.TaskID, &ev.Title, &ev.Description, &ev.Location,
		&startAt, &endAt, &ev.AllDay, &ev.RRule, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Event{}, err
	}
	ev.Start = fromUnix(startAt)
	ev.End = fromUnix(endAt)
	ev.CreatedAt = fromUnix(createdAt)
	ev.UpdatedAt = fromUnix(updatedAt)
	return ev, nil
}

// Timestamps are stored as Unix milliseconds in UTC.
func toUnix(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromUnix(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
