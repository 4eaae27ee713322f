package game

import (
	"time"

	"github.com/abhisek/mathtik/internal/facts"
	"github.com/abhisek/mathtik/internal/mastery"
	"github.com/abhisek/mathtik/internal/problemgen"
	"github.com/abhisek/mathtik/internal/profile"
	"github.com/abhisek/mathtik/internal/scheduler"
	"github.com/abhisek/mathtik/internal/session"
	"github.com/abhisek/mathtik/internal/store"
)

// Round is the lifetime of one challenge. A wrong answer keeps the round
// open; a correct one resolves it.
type Round struct {
	Challenge problemgen.Challenge
	// Mistakes counts wrong answers given in this round.
	Mistakes  int
	StartedAt time.Time
}

// state is everything the game owns. Mutations build a new state and
// swap it in.
type state struct {
	profile  profile.Profile
	mastery  *mastery.Table
	mistakes *scheduler.MistakeQueue
	session  *session.Tracker
	round    *Round
}

func defaultState() *state {
	return &state{
		profile:  profile.Default(),
		mastery:  mastery.NewTable(),
		mistakes: scheduler.NewMistakeQueue(nil),
		session:  session.NewTracker(),
	}
}

func (s *state) clone() *state {
	cp := &state{
		profile:  s.profile.Clone(),
		mastery:  s.mastery.Clone(),
		mistakes: s.mistakes.Clone(),
		session:  s.session.Clone(),
	}
	if s.round != nil {
		r := *s.round
		cp.round = &r
	}
	return cp
}

func (s *state) snapshotData() store.SnapshotData {
	active, last := s.session.SnapshotData()
	mistakes := make([]string, 0, s.mistakes.Len())
	for _, sig := range s.mistakes.Items() {
		mistakes = append(mistakes, string(sig))
	}
	return store.SnapshotData{
		Profile:        s.profile.SnapshotData(),
		Mastery:        s.mastery.SnapshotData(),
		RecentMistakes: mistakes,
		Session:        active,
		LastSession:    last,
	}
}

func stateFromSnapshot(d store.SnapshotData) *state {
	sigs := make([]facts.Signature, 0, len(d.RecentMistakes))
	for _, raw := range d.RecentMistakes {
		sig := facts.Signature(raw)
		if _, _, _, err := sig.Parse(); err == nil {
			sigs = append(sigs, sig)
		}
	}
	return &state{
		profile:  profile.FromSnapshot(d.Profile),
		mastery:  mastery.FromSnapshot(d.Mastery),
		mistakes: scheduler.NewMistakeQueue(sigs),
		session:  session.FromSnapshot(d.Session, d.LastSession),
	}
}
