package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

// eventRepo implements EventRepo with squirrel-built SQL.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args, err := sqlBuilder.Insert("session_events").
		Columns("sequence", "timestamp", "session_id", "action", "attempts", "correct", "duration_secs").
		Values(seqNum, eventTime(data.At), data.SessionID, data.Action, data.Attempts, data.Correct, data.DurationSecs).
		ToSql()
	if err != nil {
		return fmt.Errorf("build session event insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	q := sqlBuilder.Select("sequence", "timestamp", "session_id", "action", "attempts", "correct", "duration_secs").
		From("session_events").
		Where(squirrel.Eq{"action": SessionActionEnd}).
		OrderBy("sequence DESC")

	if opts.After > 0 {
		q = q.Where(squirrel.Gt{"sequence": opts.After})
	}
	if opts.Before > 0 {
		q = q.Where(squirrel.Lt{"sequence": opts.Before})
	}
	if !opts.From.IsZero() {
		q = q.Where(squirrel.GtOrEq{"timestamp": opts.From.UnixMilli()})
	}
	if !opts.To.IsZero() {
		q = q.Where(squirrel.LtOrEq{"timestamp": opts.To.UnixMilli()})
	}
	if opts.Limit > 0 {
		q = q.Limit(uint64(opts.Limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build session event query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEvent
	for rows.Next() {
		var (
			ev   SessionEvent
			tsMs int64
		)
		if err := rows.Scan(&ev.Sequence, &tsMs, &ev.SessionID, &ev.Action, &ev.Attempts, &ev.Correct, &ev.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		ev.Timestamp = time.UnixMilli(tsMs)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session events: %w", err)
	}
	return out, nil
}
