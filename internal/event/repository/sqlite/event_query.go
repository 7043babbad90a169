package sqlite

import (
	"strings"

	repo "eventask/internal/event/repository"
)

// listOrder is the only ordering ListEvents supports.
const listOrder = "ORDER BY start_at ASC, created_at ASC"

// buildWhere builds the WHERE clause + args shared by counting and listing.
func (r *implRepository) buildWhere(opt repo.ListEventsOptions) (string, []any) {
	var conditions []string
	var args []any

	if !opt.From.IsZero() {
		conditions = append(conditions, "(end_at > ? OR start_at >= ?)")
		args = append(args, toUnix(opt.From), toUnix(opt.From))
	}
	if !opt.To.IsZero() {
		conditions = append(conditions, "start_at < ?")
		args = append(args, toUnix(opt.To))
	}
	if opt.TaskID != "" {
		conditions = append(conditions, "task_id = ?")
		args = append(args, opt.TaskID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListEvents.
func (r *implRepository) buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	where, args := r.buildWhere(opt)
	parts := []string{"WHERE " + where}

	parts = append(parts, listOrder)

	// SQLite requires LIMIT before OFFSET; -1 means no limit.
	if opt.Limit > 0 || opt.Offset > 0 {
		limit := opt.Limit
		if limit <= 0 {
			limit = -1
		}
		parts = append(parts, "LIMIT ?")
		args = append(args, limit)
		if opt.Offset > 0 {
			parts = append(parts, "OFFSET ?")
			args = append(args, opt.Offset)
		}
	}

	return strings.Join(parts, " "), args
}
