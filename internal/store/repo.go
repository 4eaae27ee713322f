package store

import (
	"context"
	"time"
)

// DefaultSnapshotName is the key the learner's state blob is stored under.
const DefaultSnapshotName = "profile"

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full learner state. It is overwritten
// wholesale on every save.
type SnapshotData struct {
	Profile        *ProfileData                 `json:"profile,omitempty"`
	Mastery        map[string]MasteryRecordData `json:"mastery,omitempty"`
	RecentMistakes []string                     `json:"recentMistakes,omitempty"`
	Session        *SessionData                 `json:"session,omitempty"`
	LastSession    *LastSessionData             `json:"lastSession,omitempty"`
}

// ProfileData is the persisted form of the learner profile.
type ProfileData struct {
	Points        int      `json:"points"`
	Streak        int      `json:"streak"`
	BestStreak    int      `json:"bestStreak"`
	Level         int      `json:"level"`
	LevelProgress int      `json:"levelProgress"`
	TotalAttempts int      `json:"totalAttempts"`
	TotalCorrect  int      `json:"totalCorrect"`
	SoundOn       bool     `json:"soundOn"`
	Unlocked      []string `json:"unlocked,omitempty"`
	Language      string   `json:"language"`
	Theme         string   `json:"theme"`
	Champion      bool     `json:"champion,omitempty"`
}

// MasteryRecordData is the persisted form of one fact's SRS record.
// DueAt is epoch seconds.
type MasteryRecordData struct {
	Score        int     `json:"score"`
	Ease         float64 `json:"ease"`
	IntervalSecs int     `json:"intervalSec"`
	DueAt        int64   `json:"dueAt"`
	LastResult   bool    `json:"lastResult"`
}

// SessionData is the persisted active session.
type SessionData struct {
	ID        string `json:"id"`
	StartedAt string `json:"startedAt"` // RFC3339
	Attempts  int    `json:"attempts"`
	Correct   int    `json:"correct"`
}

// LastSessionData summarizes the most recently ended session.
type LastSessionData struct {
	DurationSecs int64 `json:"durationSec"`
	Attempts     int   `json:"attempts"`
	Correct      int   `json:"correct"`
}

// Snapshot is a saved copy of learner state.
type Snapshot struct {
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages the learner state blob.
type SnapshotRepo interface {
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the stored snapshot, or nil if none exists.
	Latest(ctx context.Context) (*Snapshot, error)
}

// AnswerEventData captures one scored attempt. A zero At is stamped with
// the wall clock.
type AnswerEventData struct {
	At          time.Time
	SessionID   string
	ChallengeID string
	Signature   string
	Submitted   int
	Answer      int
	Correct     bool
	InputMode   string
	Review      bool
	TimeMs      int64
}

// Session event actions.
const (
	SessionActionStart = "start"
	SessionActionEnd   = "end"
)

// SessionEventData captures a session boundary. A zero At is stamped with
// the wall clock.
type SessionEventData struct {
	At           time.Time
	SessionID    string
	Action       string
	Attempts     int
	Correct      int
	DurationSecs int64
}

// SessionEvent is a stored session boundary.
type SessionEvent struct {
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

func eventTime(at time.Time) int64 {
	if at.IsZero() {
		at = time.Now()
	}
	return at.UnixMilli()
}

// FactAccuracy aggregates answer events for one signature.
type FactAccuracy struct {
	Signature string
	Attempts  int
	Correct   int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionEvents returns ended-session events, newest first.
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)

	// FactAccuracy returns per-signature answer totals ordered by signature.
	FactAccuracy(ctx context.Context) ([]FactAccuracy, error)
}
