package game

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtik/internal/logger"
	"github.com/abhisek/mathtik/internal/problemgen"
	"github.com/abhisek/mathtik/internal/profile"
	"github.com/abhisek/mathtik/internal/store"
)

// fakeSnapshots is an in-memory SnapshotRepo.
type fakeSnapshots struct {
	snap    *store.Snapshot
	saves   int
	loadErr error
	saveErr error
}

func (f *fakeSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *snap
	f.snap = &cp
	return nil
}

func (f *fakeSnapshots) Latest(_ context.Context) (*store.Snapshot, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.snap, nil
}

// fakeEvents records appended events.
type fakeEvents struct {
	answers  []store.AnswerEventData
	sessions []store.SessionEventData
}

func (f *fakeEvents) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	f.answers = append(f.answers, d)
	return nil
}

func (f *fakeEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.sessions = append(f.sessions, d)
	return nil
}

func (f *fakeEvents) QuerySessionEvents(context.Context, store.QueryOpts) ([]store.SessionEvent, error) {
	return nil, nil
}

func (f *fakeEvents) FactAccuracy(context.Context) ([]store.FactAccuracy, error) {
	return nil, nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestGame(t *testing.T, snaps *fakeSnapshots, events *fakeEvents, c *clock) *Game {
	t.Helper()
	opts := Options{
		Rand:   rand.New(rand.NewPCG(11, 12)),
		Clock:  c.now,
		Logger: logger.Discard(),
	}
	if snaps != nil {
		opts.Snapshots = snaps
	}
	if events != nil {
		opts.Events = events
	}
	g, err := New(context.Background(), opts)
	require.NoError(t, err)
	return g
}

func newClock() *clock {
	return &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestSubmitAnswer_NoChallenge(t *testing.T) {
	g := newTestGame(t, nil, nil, newClock())
	out := g.SubmitAnswer(5)
	assert.False(t, out.Scored)
	assert.Equal(t, 0, g.Profile().TotalAttempts)
}

func TestTenCorrectAnswersLevelUp(t *testing.T) {
	g := newTestGame(t, nil, nil, newClock())
	g.StartSession()

	for i := 0; i < 10; i++ {
		ch := g.EnsureChallenge()
		out := g.SubmitAnswer(ch.Answer)
		require.True(t, out.Correct, "answer %d", i)
	}

	p := g.Profile()
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 170, p.Points)
	assert.Equal(t, 10, p.Streak)
	assert.Equal(t, 10, p.BestStreak)
	assert.Equal(t, 10, g.Session().Attempts)
	assert.Equal(t, 10, g.Session().Correct)

	_, ok := g.CurrentChallenge()
	assert.True(t, ok, "a new challenge is scheduled after a correct answer")
}

func TestMissThenCorrectSchedulesReview(t *testing.T) {
	g := newTestGame(t, nil, nil, newClock())
	g.EnsureChallenge()
	g.SubmitAnswer(mustCurrent(t, g).Answer)
	g.SubmitAnswer(mustCurrent(t, g).Answer)
	require.Equal(t, 2, g.Profile().Streak)

	missed := mustCurrent(t, g)
	out := g.SubmitAnswer(missed.Answer + 1)
	assert.False(t, out.Correct)
	assert.Equal(t, 0, g.Profile().Streak)
	assert.Equal(t, 1, len(g.Mistakes()))
	assert.Equal(t, missed.Signature(), g.Mistakes()[0])

	r, ok := g.Round()
	require.True(t, ok)
	assert.Equal(t, missed.ID, r.Challenge.ID, "round stays open after a miss")
	assert.Equal(t, 1, r.Mistakes)

	out = g.SubmitAnswer(missed.Answer)
	require.True(t, out.Correct)

	next := mustCurrent(t, g)
	assert.Equal(t, missed.Signature(), next.Signature())
	assert.NotEqual(t, missed.ID, next.ID)
	assert.True(t, next.Review)
	assert.Empty(t, g.Mistakes())
}

func TestStartSessionIdempotent(t *testing.T) {
	c := newClock()
	events := &fakeEvents{}
	g := newTestGame(t, nil, events, c)

	g.StartSession()
	first := g.Session()
	c.t = c.t.Add(time.Minute)
	g.StartSession()
	second := g.Session()

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.StartedAt.Equal(second.StartedAt))
	assert.Len(t, events.sessions, 1)
}

func TestEventsUseInjectedClock(t *testing.T) {
	c := newClock()
	events := &fakeEvents{}
	g := newTestGame(t, nil, events, c)

	start := c.t
	g.StartSession()
	c.t = c.t.Add(30 * time.Second)
	answered := c.t
	g.SubmitAnswer(g.EnsureChallenge().Answer)
	c.t = c.t.Add(time.Minute)
	g.EndSession()

	require.Len(t, events.sessions, 2)
	require.Len(t, events.answers, 1)
	assert.True(t, events.sessions[0].At.Equal(start))
	assert.True(t, events.answers[0].At.Equal(answered))
	assert.True(t, events.sessions[1].At.Equal(c.t))
}

func TestEndSession(t *testing.T) {
	c := newClock()
	events := &fakeEvents{}
	g := newTestGame(t, nil, events, c)

	_, ok := g.EndSession()
	assert.False(t, ok, "ending without a session is a no-op")

	g.StartSession()
	ch := g.EnsureChallenge()
	g.SubmitAnswer(ch.Answer)
	g.SubmitAnswer(mustCurrent(t, g).Answer + 1)
	c.t = c.t.Add(2 * time.Minute)

	sum, ok := g.EndSession()
	require.True(t, ok)
	assert.Equal(t, 2*time.Minute, sum.Duration)
	assert.Equal(t, 2, sum.Attempts)
	assert.Equal(t, 1, sum.Correct)

	last, ok := g.LastSession()
	require.True(t, ok)
	assert.Equal(t, sum, last)
	assert.False(t, g.Session().Active)

	require.Len(t, events.sessions, 2)
	assert.Equal(t, store.SessionActionEnd, events.sessions[1].Action)
	assert.Equal(t, int64(120), events.sessions[1].DurationSecs)
	assert.Len(t, events.answers, 2)
}

func TestPreferences(t *testing.T) {
	g := newTestGame(t, nil, nil, newClock())

	assert.False(t, g.ToggleSound())
	assert.True(t, g.ToggleSound())

	assert.True(t, g.SetLanguage("he"))
	assert.False(t, g.SetLanguage("klingon"))
	assert.Equal(t, profile.Hebrew, g.Profile().Language)

	assert.True(t, g.SetTheme("barbie"))
	assert.False(t, g.SetTheme("neon"))
	assert.Equal(t, profile.ThemeBarbie, g.Profile().Theme)
}

func TestPersistAndReload(t *testing.T) {
	c := newClock()
	snaps := &fakeSnapshots{}
	g := newTestGame(t, snaps, nil, c)

	g.StartSession()
	ch := g.EnsureChallenge()
	g.SubmitAnswer(ch.Answer)
	missed := mustCurrent(t, g)
	g.SubmitAnswer(missed.Answer + 1)
	g.SetTheme("barbie")
	require.NotNil(t, snaps.snap)

	restored := newTestGame(t, snaps, nil, c)
	p := restored.Profile()
	assert.Equal(t, g.Profile(), p)
	assert.Equal(t, profile.ThemeBarbie, p.Theme)
	assert.Equal(t, g.Mistakes(), restored.Mistakes())
	assert.Equal(t, g.Mastery().Len(), restored.Mastery().Len())
	assert.Equal(t, g.Session().ID, restored.Session().ID)

	_, ok := restored.CurrentChallenge()
	assert.False(t, ok, "the open round is not persisted")
}

func TestLoadFailureFallsBackToDefaults(t *testing.T) {
	snaps := &fakeSnapshots{loadErr: errors.New("unmarshal snapshot data: boom")}
	g := newTestGame(t, snaps, nil, newClock())
	assert.Equal(t, profile.Default(), g.Profile())
	assert.Equal(t, 0, g.Mastery().Len())
}

func TestSaveFailureDoesNotSurface(t *testing.T) {
	snaps := &fakeSnapshots{saveErr: errors.New("disk full")}
	g := newTestGame(t, snaps, nil, newClock())

	ch := g.EnsureChallenge()
	out := g.SubmitAnswer(ch.Answer)
	assert.True(t, out.Correct)
	assert.Equal(t, 10, g.Profile().Points)
	assert.Positive(t, snaps.saves)
}

func TestDueRecordIsReviewed(t *testing.T) {
	c := newClock()
	g := newTestGame(t, nil, nil, c)

	first := g.EnsureChallenge()
	g.SubmitAnswer(first.Answer)

	// The record's 10 second interval elapses.
	c.t = c.t.Add(11 * time.Second)
	next := g.NextChallenge()
	assert.Equal(t, first.Signature(), next.Signature())
	assert.True(t, next.Review)
}

func TestReset(t *testing.T) {
	g := newTestGame(t, nil, nil, newClock())
	ch := g.EnsureChallenge()
	g.SubmitAnswer(ch.Answer)
	g.Reset()
	assert.Equal(t, profile.Default(), g.Profile())
	assert.Equal(t, 0, g.Mastery().Len())
}

func mustCurrent(t *testing.T, g *Game) problemgen.Challenge {
	t.Helper()
	ch, ok := g.CurrentChallenge()
	require.True(t, ok, "expected an open challenge")
	return ch
}
