package mastery

import (
	"math"
	"time"

	"github.com/abhisek/mathtik/internal/facts"
)

// IntervalLadder is the expanding review schedule in seconds. Only the
// first rung seeds new records; later intervals grow by ease.
var IntervalLadder = []int{10, 60, 300, 1800, 86400, 259200}

// PenaltyIntervalSecs is the interval after any wrong answer.
const PenaltyIntervalSecs = 10

// Score and ease bounds.
const (
	MinScore = 0
	MaxScore = 5
	MinEase  = 1.2
	MaxEase  = 2.6
)

// First-attempt seeds.
const (
	initialEaseCorrect   = 2.0
	initialEaseIncorrect = 1.6
)

// Per-attempt adjustments.
const (
	scoreGain   = 1
	scoreLoss   = 2
	easeGain    = 0.08
	easePenalty = 0.2
)

// Record is one fact's spaced-repetition state.
type Record struct {
	Signature    facts.Signature
	Score        int
	Ease         float64
	IntervalSecs int
	DueAt        time.Time
	LastResult   bool
}

// IsDue returns true if the record is at or past its due time.
func (r Record) IsDue(now time.Time) bool {
	return !now.Before(r.DueAt)
}

// Interval returns the current interval as a duration.
func (r Record) Interval() time.Duration {
	return time.Duration(r.IntervalSecs) * time.Second
}

// Update returns the record after one attempt. prev is nil on the first
// attempt for a fact. prev is never modified.
func Update(sig facts.Signature, prev *Record, correct bool, now time.Time) Record {
	if prev == nil {
		r := Record{
			Signature:    sig,
			Ease:         initialEaseIncorrect,
			IntervalSecs: PenaltyIntervalSecs,
			LastResult:   correct,
		}
		if correct {
			r.Score = 1
			r.Ease = initialEaseCorrect
			r.IntervalSecs = IntervalLadder[0]
		}
		r.DueAt = now.Add(r.Interval())
		return r
	}

	r := *prev
	r.Signature = sig
	r.LastResult = correct
	if correct {
		r.Score = clampInt(r.Score+scoreGain, MinScore, MaxScore)
		r.Ease = clampFloat(r.Ease+easeGain, MinEase, MaxEase)
		r.IntervalSecs = max(IntervalLadder[0], int(math.Round(float64(r.IntervalSecs)*r.Ease)))
	} else {
		r.Score = clampInt(r.Score-scoreLoss, MinScore, MaxScore)
		r.Ease = clampFloat(r.Ease-easePenalty, MinEase, MaxEase)
		r.IntervalSecs = PenaltyIntervalSecs
	}
	r.DueAt = now.Add(r.Interval())
	return r
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
