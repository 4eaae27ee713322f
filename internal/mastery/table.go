package mastery

import (
	"maps"
	"slices"
	"sort"
	"time"

	"github.com/abhisek/mathtik/internal/facts"
)

// Strength thresholds for the stats view.
const (
	StrongScore = 4
	WeakScore   = 1
)

// Table maps fact signatures to their mastery records. Records are
// created on first attempt and never deleted.
type Table struct {
	records map[facts.Signature]Record
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{records: make(map[facts.Signature]Record)}
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	return &Table{records: maps.Clone(t.records)}
}

// Len returns the number of tracked facts.
func (t *Table) Len() int { return len(t.records) }

// Get returns the record for sig.
func (t *Table) Get(sig facts.Signature) (Record, bool) {
	r, ok := t.records[sig]
	return r, ok
}

// Record applies one attempt to the table and returns the new record.
func (t *Table) Record(sig facts.Signature, correct bool, now time.Time) Record {
	var prev *Record
	if r, ok := t.records[sig]; ok {
		prev = &r
	}
	next := Update(sig, prev, correct, now)
	t.records[sig] = next
	return next
}

// Set stores r under its signature.
func (t *Table) Set(r Record) {
	t.records[r.Signature] = r
}

// All returns every record sorted by signature.
func (t *Table) All() []Record {
	out := slices.Collect(maps.Values(t.records))
	sort.Slice(out, func(i, j int) bool { return out[i].Signature < out[j].Signature })
	return out
}

// Due returns records due at now, earliest first. Ties break on
// signature so the order is stable across runs.
func (t *Table) Due(now time.Time) []Record {
	var out []Record
	for _, r := range t.records {
		if r.IsDue(now) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueAt.Equal(out[j].DueAt) {
			return out[i].DueAt.Before(out[j].DueAt)
		}
		return out[i].Signature < out[j].Signature
	})
	return out
}

// FirstDue returns the earliest due record, if any.
func (t *Table) FirstDue(now time.Time) (Record, bool) {
	due := t.Due(now)
	if len(due) == 0 {
		return Record{}, false
	}
	return due[0], true
}

// Stats summarizes the table for display.
type Stats struct {
	Tracked int
	Due     int
	Strong  int
	Weak    int
}

// Stats computes summary counts at now.
func (t *Table) Stats(now time.Time) Stats {
	var s Stats
	for _, r := range t.records {
		s.Tracked++
		if r.IsDue(now) {
			s.Due++
		}
		if r.Score >= StrongScore {
			s.Strong++
		}
		if r.Score <= WeakScore {
			s.Weak++
		}
	}
	return s
}
