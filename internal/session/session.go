package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathtik/internal/store"
)

// State is a point-in-time view of the session counters.
type State struct {
	ID        string
	Active    bool
	StartedAt time.Time
	Attempts  int
	Correct   int
}

// Summary is what remains of a session once it ends.
type Summary struct {
	Duration time.Duration
	Attempts int
	Correct  int
}

// Accuracy returns the share of correct attempts in [0,1].
func (s Summary) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// Tracker owns the active practice session. At most one is active.
type Tracker struct {
	state State
	last  *Summary
	newID func() string
}

// NewTracker returns an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{newID: uuid.NewString}
}

// Start begins a session. It is a no-op while one is already active.
// Reports whether a new session was started.
func (t *Tracker) Start(now time.Time) bool {
	if t.state.Active {
		return false
	}
	t.state = State{
		ID:        t.newID(),
		Active:    true,
		StartedAt: now,
	}
	return true
}

// End closes the active session and records its summary. It is a no-op
// when no session is active.
func (t *Tracker) End(now time.Time) (Summary, bool) {
	if !t.state.Active {
		return Summary{}, false
	}
	sum := Summary{
		Duration: max(0, now.Sub(t.state.StartedAt)),
		Attempts: t.state.Attempts,
		Correct:  t.state.Correct,
	}
	t.last = &sum
	t.state = State{}
	return sum, true
}

// Record counts one scored attempt. Attempts outside a session are not
// counted.
func (t *Tracker) Record(correct bool) {
	if !t.state.Active {
		return
	}
	t.state.Attempts++
	if correct {
		t.state.Correct++
	}
}

// State returns the current counters.
func (t *Tracker) State() State { return t.state }

// Last returns the most recently ended session's summary.
func (t *Tracker) Last() (Summary, bool) {
	if t.last == nil {
		return Summary{}, false
	}
	return *t.last, true
}

// Elapsed returns how long the active session has run, or 0.
func (t *Tracker) Elapsed(now time.Time) time.Duration {
	if !t.state.Active {
		return 0
	}
	return max(0, now.Sub(t.state.StartedAt))
}

// Clone returns an independent copy.
func (t *Tracker) Clone() *Tracker {
	cp := *t
	if t.last != nil {
		last := *t.last
		cp.last = &last
	}
	return &cp
}

// SnapshotData exports the active session and last summary.
func (t *Tracker) SnapshotData() (*store.SessionData, *store.LastSessionData) {
	var active *store.SessionData
	if t.state.Active {
		active = &store.SessionData{
			ID:        t.state.ID,
			StartedAt: t.state.StartedAt.Format(time.RFC3339),
			Attempts:  t.state.Attempts,
			Correct:   t.state.Correct,
		}
	}
	var last *store.LastSessionData
	if t.last != nil {
		last = &store.LastSessionData{
			DurationSecs: int64(t.last.Duration / time.Second),
			Attempts:     t.last.Attempts,
			Correct:      t.last.Correct,
		}
	}
	return active, last
}

// FromSnapshot restores a tracker. An active session with an unreadable
// start time is dropped.
func FromSnapshot(active *store.SessionData, last *store.LastSessionData) *Tracker {
	t := NewTracker()
	if active != nil {
		if started, err := time.Parse(time.RFC3339, active.StartedAt); err == nil {
			t.state = State{
				ID:        active.ID,
				Active:    true,
				StartedAt: started,
				Attempts:  max(0, active.Attempts),
				Correct:   max(0, active.Correct),
			}
		}
	}
	if last != nil {
		t.last = &Summary{
			Duration: time.Duration(max(0, last.DurationSecs)) * time.Second,
			Attempts: last.Attempts,
			Correct:  last.Correct,
		}
	}
	return t
}
