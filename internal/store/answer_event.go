package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args, err := sqlBuilder.Insert("answer_events").
		Columns("sequence", "timestamp", "session_id", "challenge_id", "signature",
			"submitted", "answer", "correct", "input_mode", "review", "time_ms").
		Values(seqNum, eventTime(data.At), data.SessionID, data.ChallengeID, data.Signature,
			data.Submitted, data.Answer, data.Correct, data.InputMode, data.Review, data.TimeMs).
		ToSql()
	if err != nil {
		return fmt.Errorf("build answer event insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) FactAccuracy(ctx context.Context) ([]FactAccuracy, error) {
	query, args, err := sqlBuilder.Select("signature", "COUNT(*)", "COALESCE(SUM(correct), 0)").
		From("answer_events").
		GroupBy("signature").
		OrderBy("signature").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build accuracy query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query fact accuracy: %w", err)
	}
	defer rows.Close()

	var out []FactAccuracy
	for rows.Next() {
		var fa FactAccuracy
		if err := rows.Scan(&fa.Signature, &fa.Attempts, &fa.Correct); err != nil {
			return nil, fmt.Errorf("scan fact accuracy: %w", err)
		}
		out = append(out, fa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fact accuracy: %w", err)
	}
	return out, nil
}
