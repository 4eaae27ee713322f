package mastery

import (
	"time"

	"github.com/abhisek/mathtik/internal/facts"
	"github.com/abhisek/mathtik/internal/store"
)

// SnapshotData exports the table for persistence.
func (t *Table) SnapshotData() map[string]store.MasteryRecordData {
	out := make(map[string]store.MasteryRecordData, len(t.records))
	for sig, r := range t.records {
		out[string(sig)] = store.MasteryRecordData{
			Score:        r.Score,
			Ease:         r.Ease,
			IntervalSecs: r.IntervalSecs,
			DueAt:        r.DueAt.Unix(),
			LastResult:   r.LastResult,
		}
	}
	return out
}

// FromSnapshot rebuilds a table from persisted records. Records with a
// malformed signature are skipped; out-of-range values are clamped.
func FromSnapshot(data map[string]store.MasteryRecordData) *Table {
	t := NewTable()
	for key, d := range data {
		sig := facts.Signature(key)
		if _, _, _, err := sig.Parse(); err != nil {
			continue
		}
		ease := d.Ease
		if ease == 0 {
			ease = initialEaseIncorrect
		}
		t.records[sig] = Record{
			Signature:    sig,
			Score:        clampInt(d.Score, MinScore, MaxScore),
			Ease:         clampFloat(ease, MinEase, MaxEase),
			IntervalSecs: max(d.IntervalSecs, PenaltyIntervalSecs),
			DueAt:        time.Unix(d.DueAt, 0),
			LastResult:   d.LastResult,
		}
	}
	return t
}
