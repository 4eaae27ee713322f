package progression

import (
	"time"

	"github.com/abhisek/mathtik/internal/facts"
	"github.com/abhisek/mathtik/internal/mastery"
	"github.com/abhisek/mathtik/internal/problemgen"
	"github.com/abhisek/mathtik/internal/profile"
	"github.com/abhisek/mathtik/internal/rewards"
	"github.com/abhisek/mathtik/internal/scheduler"
)

// Point awards.
const (
	BasePoints     = 10
	StreakBonusPer = 2
	MaxStreakBonus = 10
)

// StreakBonus returns the bonus for a correct answer given the streak
// held before it.
func StreakBonus(streak int) int {
	return min(MaxStreakBonus, max(0, streak*StreakBonusPer))
}

// Outcome describes what one attempt changed.
type Outcome struct {
	// Scored is false when there was nothing to score.
	Scored    bool
	Correct   bool
	Submitted int
	Answer    int

	PointsAwarded int
	StreakBonus   int
	Streak        int

	LevelUp bool
	Level   int
	// ChampionReached is set only on the attempt that completes level 10
	// for the first time.
	ChampionReached bool

	Unlocked []rewards.ID
	Record   mastery.Record
	// Queued is true when the miss added the fact to the mistakes queue.
	Queued bool
}

// Attempt is the state one scoring step reads and writes.
type Attempt struct {
	Challenge problemgen.Challenge
	Submitted int
	Profile   profile.Profile
	// Mastery and Mistakes are updated in place.
	Mastery  *mastery.Table
	Mistakes *scheduler.MistakeQueue
	Now      time.Time
}

// Score evaluates an attempt and returns the replacement profile with the
// outcome. The input profile is not modified.
func Score(a Attempt) (profile.Profile, Outcome) {
	p := a.Profile.Clone()
	ch := a.Challenge
	correct := ch.IsCorrect(a.Submitted)

	out := Outcome{
		Scored:    true,
		Correct:   correct,
		Submitted: a.Submitted,
		Answer:    ch.Answer,
	}

	p.TotalAttempts++
	out.Record = a.Mastery.Record(ch.Signature(), correct, a.Now)

	if !correct {
		p.Streak = 0
		out.Queued = a.Mistakes.Push(ch.Signature())
		out.Level = p.Level
		return p, out
	}

	p.TotalCorrect++
	out.StreakBonus = StreakBonus(p.Streak)
	out.PointsAwarded = BasePoints + out.StreakBonus
	p.Points += out.PointsAwarded
	p.Streak++
	p.BestStreak = max(p.BestStreak, p.Streak)
	out.Streak = p.Streak

	p.LevelProgress++
	if p.LevelProgress >= profile.LevelTarget {
		p.LevelProgress = 0
		if p.Level < facts.MaxLevel {
			p.Level++
			out.LevelUp = true
		} else if !p.Champion {
			p.Champion = true
			out.ChampionReached = true
		}
	}
	out.Level = p.Level

	out.Unlocked = p.Unlocked.Unlock(p.Points)
	return p, out
}
