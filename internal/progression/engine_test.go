package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtik/internal/facts"
	"github.com/abhisek/mathtik/internal/mastery"
	"github.com/abhisek/mathtik/internal/problemgen"
	"github.com/abhisek/mathtik/internal/profile"
	"github.com/abhisek/mathtik/internal/rewards"
	"github.com/abhisek/mathtik/internal/scheduler"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func challenge(op facts.Operator, a, b int) problemgen.Challenge {
	f, err := facts.NewSignature(op, a, b).Fact()
	if err != nil {
		panic(err)
	}
	return problemgen.Challenge{ID: "test", Op: f.Op, A: f.A, B: f.B, Answer: f.Answer}
}

type harness struct {
	p   profile.Profile
	tbl *mastery.Table
	q   *scheduler.MistakeQueue
}

func newHarness() *harness {
	return &harness{p: profile.Default(), tbl: mastery.NewTable(), q: scheduler.NewMistakeQueue(nil)}
}

func (h *harness) answer(ch problemgen.Challenge, value int) Outcome {
	var out Outcome
	h.p, out = Score(Attempt{Challenge: ch, Submitted: value, Profile: h.p, Mastery: h.tbl, Mistakes: h.q, Now: now})
	return out
}

func TestStreakBonus(t *testing.T) {
	tests := []struct{ streak, want int }{
		{0, 0}, {1, 2}, {4, 8}, {5, 10}, {12, 10}, {-1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StreakBonus(tt.streak), "streak %d", tt.streak)
	}
}

func TestScore_TenCorrectLevelsUp(t *testing.T) {
	h := newHarness()
	ch := challenge(facts.Multiply, 1, 3)

	var last Outcome
	for i := 0; i < 10; i++ {
		last = h.answer(ch, 3)
		require.True(t, last.Correct)
		if i < 9 {
			assert.False(t, last.LevelUp, "answer %d", i)
		}
	}

	// Bonuses use the streak before each answer: 0,2,4,6,8,10,10,10,10,10.
	assert.Equal(t, 10*BasePoints+70, h.p.Points)
	assert.True(t, last.LevelUp)
	assert.Equal(t, 2, h.p.Level)
	assert.Equal(t, 0, h.p.LevelProgress)
	assert.Equal(t, 10, h.p.Streak)
	assert.Equal(t, 10, h.p.BestStreak)
	assert.Equal(t, 10, h.p.TotalCorrect)
	assert.Equal(t, []rewards.ID{rewards.Star, rewards.Rocket}, h.p.Unlocked.IDs())
}

func TestScore_MissResetsStreakAndQueues(t *testing.T) {
	h := newHarness()
	ch := challenge(facts.Multiply, 6, 7)

	h.answer(ch, 42)
	h.answer(ch, 42)
	pointsBefore, levelBefore := h.p.Points, h.p.Level

	out := h.answer(ch, 41)
	assert.False(t, out.Correct)
	assert.True(t, out.Queued)
	assert.Equal(t, 0, h.p.Streak)
	assert.Equal(t, 2, h.p.BestStreak)
	assert.Equal(t, pointsBefore, h.p.Points)
	assert.Equal(t, levelBefore, h.p.Level)
	assert.Equal(t, []facts.Signature{"m:6x7"}, h.q.Items())

	out = h.answer(ch, 40)
	assert.False(t, out.Queued, "second miss must not duplicate")
	assert.Equal(t, 1, h.q.Len())
	assert.Equal(t, 4, h.p.TotalAttempts)
}

func TestScore_MasteryUpdatedEveryAttempt(t *testing.T) {
	h := newHarness()
	ch := challenge(facts.Divide, 12, 4)

	out := h.answer(ch, 4)
	assert.Equal(t, 0, out.Record.Score)
	out = h.answer(ch, 3)
	assert.Equal(t, 1, out.Record.Score)

	rec, ok := h.tbl.Get("d:12/4")
	require.True(t, ok)
	assert.Equal(t, out.Record, rec)
}

func TestScore_DoesNotMutateInputProfile(t *testing.T) {
	h := newHarness()
	before := h.p.Clone()
	_, _ = Score(Attempt{Challenge: challenge(facts.Multiply, 9, 9), Submitted: 81, Profile: h.p, Mastery: h.tbl, Mistakes: h.q, Now: now})
	assert.Equal(t, before, h.p)
}

func TestScore_BestStreakMonotonic(t *testing.T) {
	h := newHarness()
	ch := challenge(facts.Multiply, 2, 2)
	pattern := []bool{true, true, true, false, true, false, true, true, true, true, true}
	best := 0
	for i, ok := range pattern {
		v := 4
		if !ok {
			v = 5
		}
		h.answer(ch, v)
		assert.GreaterOrEqual(t, h.p.BestStreak, best, "answer %d", i)
		best = h.p.BestStreak
	}
	assert.Equal(t, 5, best)
}

func TestScore_ChampionAtMaxLevel(t *testing.T) {
	h := newHarness()
	h.p.Level = 10
	h.p.LevelProgress = 9
	ch := challenge(facts.Multiply, 10, 10)

	out := h.answer(ch, 100)
	assert.True(t, out.ChampionReached)
	assert.False(t, out.LevelUp)
	assert.True(t, h.p.Champion)
	assert.Equal(t, 10, h.p.Level)
	assert.Equal(t, 0, h.p.LevelProgress)

	for i := 0; i < 10; i++ {
		out = h.answer(ch, 100)
		assert.False(t, out.ChampionReached, "champion reached again on answer %d", i)
	}
	assert.Equal(t, 10, h.p.Level)
}

func TestScore_CoinBoundaryScenario(t *testing.T) {
	ch := challenge(facts.Divide, 12, 4)
	ch.Variant = problemgen.SelectVariant(ch.Op, ch.A, ch.B)
	assert.Equal(t, problemgen.VariantCoinDivide, ch.Variant)

	h := newHarness()
	out := h.answer(ch, 3)
	assert.True(t, out.Correct)
	assert.Equal(t, BasePoints, out.PointsAwarded)
}
