package game

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/abhisek/mathtik/internal/facts"
	"github.com/abhisek/mathtik/internal/mastery"
	"github.com/abhisek/mathtik/internal/problemgen"
	"github.com/abhisek/mathtik/internal/profile"
	"github.com/abhisek/mathtik/internal/progression"
	"github.com/abhisek/mathtik/internal/scheduler"
	"github.com/abhisek/mathtik/internal/session"
	"github.com/abhisek/mathtik/internal/store"
)

// persistTimeout bounds each background write.
const persistTimeout = 5 * time.Second

// Options configures a Game.
type Options struct {
	// Bank defaults to the embedded catalog.
	Bank *facts.Bank
	// Snapshots and Events may be nil, in which case nothing is persisted.
	Snapshots store.SnapshotRepo
	Events    store.EventRepo
	Scheduler scheduler.Config
	// Rand defaults to a time-seeded PCG source.
	Rand problemgen.Rand
	// Clock defaults to time.Now.
	Clock  func() time.Time
	Logger *slog.Logger
}

// Game is the single owner of learner state. It is driven from one
// goroutine; every action runs to completion before the next.
type Game struct {
	sched     *scheduler.Scheduler
	snapshots store.SnapshotRepo
	events    store.EventRepo
	now       func() time.Time
	logger    *slog.Logger

	st *state
}

// New creates a game and loads persisted state. A missing or unreadable
// snapshot starts from defaults.
func New(ctx context.Context, opts Options) (*Game, error) {
	if opts.Bank == nil {
		opts.Bank = facts.Default()
	}
	if opts.Bank.Len() == 0 {
		return nil, facts.ErrEmptyCatalog
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Scheduler == (scheduler.Config{}) {
		opts.Scheduler = scheduler.DefaultConfig()
	}

	g := &Game{
		sched:     scheduler.New(opts.Bank, opts.Rand, opts.Scheduler, opts.Logger),
		snapshots: opts.Snapshots,
		events:    opts.Events,
		now:       opts.Clock,
		logger:    opts.Logger,
	}
	g.st = g.load(ctx)
	return g, nil
}

func (g *Game) load(ctx context.Context) *state {
	if g.snapshots == nil {
		return defaultState()
	}
	snap, err := g.snapshots.Latest(ctx)
	if err != nil {
		g.logger.Warn("unreadable snapshot, starting fresh", "error", err)
		return defaultState()
	}
	if snap == nil {
		g.logger.Info("no saved state, starting fresh")
		return defaultState()
	}
	return stateFromSnapshot(snap.Data)
}

// CurrentChallenge returns the open round's challenge, if any.
func (g *Game) CurrentChallenge() (problemgen.Challenge, bool) {
	if g.st.round == nil {
		return problemgen.Challenge{}, false
	}
	return g.st.round.Challenge, true
}

// Round returns the open round, if any.
func (g *Game) Round() (Round, bool) {
	if g.st.round == nil {
		return Round{}, false
	}
	return *g.st.round, true
}

// NextChallenge schedules a new challenge, replacing any open round.
func (g *Game) NextChallenge() problemgen.Challenge {
	next := g.st.clone()
	ch := g.schedule(next)
	g.commit(next)
	return ch
}

// EnsureChallenge returns the open challenge, scheduling one if needed.
func (g *Game) EnsureChallenge() problemgen.Challenge {
	if ch, ok := g.CurrentChallenge(); ok {
		return ch
	}
	return g.NextChallenge()
}

func (g *Game) schedule(st *state) problemgen.Challenge {
	now := g.now()
	ch := g.sched.Next(scheduler.Request{
		Level:      st.profile.Level,
		ReviewMode: st.profile.Champion,
		Mistakes:   st.mistakes,
		Mastery:    st.mastery,
		Now:        now,
	})
	st.round = &Round{Challenge: ch, StartedAt: now}
	return ch
}

// SubmitAnswer scores value against the open challenge. Answers are never
// rejected; with no open round nothing happens and Outcome.Scored is false.
// A correct answer resolves the round and schedules the next challenge.
func (g *Game) SubmitAnswer(value int) progression.Outcome {
	if g.st.round == nil {
		return progression.Outcome{}
	}

	now := g.now()
	next := g.st.clone()
	round := next.round

	p, out := progression.Score(progression.Attempt{
		Challenge: round.Challenge,
		Submitted: value,
		Profile:   next.profile,
		Mastery:   next.mastery,
		Mistakes:  next.mistakes,
		Now:       now,
	})
	next.profile = p
	next.session.Record(out.Correct)

	g.appendAnswer(store.AnswerEventData{
		At:          now,
		SessionID:   next.session.State().ID,
		ChallengeID: round.Challenge.ID,
		Signature:   string(round.Challenge.Signature()),
		Submitted:   value,
		Answer:      round.Challenge.Answer,
		Correct:     out.Correct,
		InputMode:   string(round.Challenge.Input),
		Review:      round.Challenge.Review,
		TimeMs:      now.Sub(round.StartedAt).Milliseconds(),
	})

	if out.Correct {
		g.schedule(next)
	} else {
		round.Mistakes++
	}

	if out.LevelUp {
		g.logger.Info("level up", "level", out.Level, "points", p.Points)
	}
	if out.ChampionReached {
		g.logger.Info("champion reached", "points", p.Points)
	}

	g.commit(next)
	return out
}

// StartSession begins a practice session. No-op while one is active.
func (g *Game) StartSession() {
	next := g.st.clone()
	now := g.now()
	if !next.session.Start(now) {
		return
	}
	g.appendSession(store.SessionEventData{
		At:        now,
		SessionID: next.session.State().ID,
		Action:    store.SessionActionStart,
	})
	g.commit(next)
}

// EndSession closes the active session. No-op when none is active.
func (g *Game) EndSession() (session.Summary, bool) {
	next := g.st.clone()
	id := next.session.State().ID
	now := g.now()
	sum, ok := next.session.End(now)
	if !ok {
		return session.Summary{}, false
	}
	g.appendSession(store.SessionEventData{
		At:           now,
		SessionID:    id,
		Action:       store.SessionActionEnd,
		Attempts:     sum.Attempts,
		Correct:      sum.Correct,
		DurationSecs: int64(sum.Duration / time.Second),
	})
	g.commit(next)
	return sum, true
}

// ToggleSound flips the sound preference and returns the new value.
func (g *Game) ToggleSound() bool {
	next := g.st.clone()
	next.profile.SoundOn = !next.profile.SoundOn
	g.commit(next)
	return next.profile.SoundOn
}

// SetLanguage switches the UI language. Unknown codes leave state unchanged.
func (g *Game) SetLanguage(code string) bool {
	lang, ok := profile.ParseLanguage(code)
	if !ok {
		g.logger.Debug("ignoring unknown language", "code", code)
		return false
	}
	next := g.st.clone()
	next.profile.Language = lang
	g.commit(next)
	return true
}

// SetTheme switches the visual theme. Unknown ids leave state unchanged.
func (g *Game) SetTheme(id string) bool {
	theme, ok := profile.ParseTheme(id)
	if !ok {
		g.logger.Debug("ignoring unknown theme", "id", id)
		return false
	}
	next := g.st.clone()
	next.profile.Theme = theme
	g.commit(next)
	return true
}

// Reset discards all progress and preferences.
func (g *Game) Reset() {
	g.commit(defaultState())
}

// Profile returns a copy of the learner profile.
func (g *Game) Profile() profile.Profile {
	return g.st.profile.Clone()
}

// Mastery returns a copy of the mastery table.
func (g *Game) Mastery() *mastery.Table {
	return g.st.mastery.Clone()
}

// MasteryStats summarizes the mastery table now.
func (g *Game) MasteryStats() mastery.Stats {
	return g.st.mastery.Stats(g.now())
}

// Mistakes returns the queued review signatures, head first.
func (g *Game) Mistakes() []facts.Signature {
	return g.st.mistakes.Items()
}

// Session returns the session counters.
func (g *Game) Session() session.State {
	return g.st.session.State()
}

// SessionElapsed returns how long the active session has run.
func (g *Game) SessionElapsed() time.Duration {
	return g.st.session.Elapsed(g.now())
}

// LastSession returns the summary of the most recently ended session.
func (g *Game) LastSession() (session.Summary, bool) {
	return g.st.session.Last()
}

// commit swaps in the new state and persists it.
func (g *Game) commit(next *state) {
	g.st = next
	g.save(next)
}

func (g *Game) save(st *state) {
	if g.snapshots == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	err := g.snapshots.Save(ctx, &store.Snapshot{
		Timestamp: g.now(),
		Data:      st.snapshotData(),
	})
	if err != nil {
		g.logger.Error("save snapshot", "error", err)
	}
}

func (g *Game) appendAnswer(data store.AnswerEventData) {
	if g.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := g.events.AppendAnswerEvent(ctx, data); err != nil {
		g.logger.Error("append answer event", "error", err)
	}
}

func (g *Game) appendSession(data store.SessionEventData) {
	if g.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := g.events.AppendSessionEvent(ctx, data); err != nil {
		g.logger.Error("append session event", "error", err)
	}
}
