package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

// snapshotRepo implements SnapshotRepo over a single named row.
type snapshotRepo struct {
	db   *sql.DB
	seq  *sequenceCounter
	name string
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	seqNum := snap.Sequence
	if seqNum == 0 {
		seqNum, err = r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
	}
	ts := snap.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	query, args, err := sqlBuilder.Insert("snapshots").
		Columns("name", "sequence", "timestamp", "data").
		Values(r.name, seqNum, ts.UnixMilli(), string(data)).
		Suffix("ON CONFLICT(name) DO UPDATE SET sequence = excluded.sequence, timestamp = excluded.timestamp, data = excluded.data").
		ToSql()
	if err != nil {
		return fmt.Errorf("build snapshot insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	query, args, err := sqlBuilder.Select("sequence", "timestamp", "data").
		From("snapshots").
		Where(squirrel.Eq{"name": r.name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build snapshot query: %w", err)
	}

	var (
		seqNum int64
		tsMs   int64
		raw    string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&seqNum, &tsMs, &raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	var data SnapshotData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &Snapshot{
		Sequence:  seqNum,
		Timestamp: time.UnixMilli(tsMs),
		Data:      data,
	}, nil
}
