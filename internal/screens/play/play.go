package play

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtik/internal/game"
	"github.com/abhisek/mathtik/internal/minigame"
	"github.com/abhisek/mathtik/internal/problemgen"
	"github.com/abhisek/mathtik/internal/progression"
	"github.com/abhisek/mathtik/internal/router"
	"github.com/abhisek/mathtik/internal/screen"
	"github.com/abhisek/mathtik/internal/screens/summary"
	"github.com/abhisek/mathtik/internal/ui/components"
	"github.com/abhisek/mathtik/internal/ui/layout"
)

// guidedMistakes is the number of misses in one round after which the
// board shows running counts.
const guidedMistakes = 2

// PlayScreen runs practice rounds against the game service.
type PlayScreen struct {
	game *game.Game

	current problemgen.Challenge
	board   *minigame.Board
	seq     minigame.Sequencer
	solving bool

	choices components.ChoicePad
	picker  components.NumberPicker

	last    *progression.Outcome
	banners []string
	elapsed time.Duration
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.Leaver = (*PlayScreen)(nil)

// New creates a PlayScreen.
func New(g *game.Game) *PlayScreen {
	return &PlayScreen{game: g}
}

func (s *PlayScreen) Init() tea.Cmd {
	s.game.StartSession()
	s.load(s.game.EnsureChallenge())
	return tea.Batch(s.tickCmd(), s.picker.Init())
}

func (s *PlayScreen) Title() string {
	return "Play"
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.current.Input == problemgen.InputMultipleChoice {
		hints = append(hints, layout.KeyHint{Key: "1-4", Description: "Answer"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Pick"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Enter", Description: "Submit"},
		layout.KeyHint{Key: "Tab", Description: "Show me"},
		layout.KeyHint{Key: "Esc", Description: "Finish"},
	)
	return hints
}

// OnLeave cancels any running auto-solve, ends the session and shows its
// summary.
func (s *PlayScreen) OnLeave() tea.Cmd {
	s.seq.Cancel()
	s.solving = false
	sum, ok := s.game.EndSession()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum, s.game.Profile())}
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.owner != s {
			return s, nil
		}
		s.elapsed = s.game.SessionElapsed()
		return s, s.tickCmd()

	case solveStepMsg:
		return s.handleSolveStep(msg)

	case components.ChoiceMsg:
		return s.submit(msg.Value)

	case components.PickMsg:
		return s.submit(msg.Value)

	case tea.KeyMsg:
		if msg.String() == "tab" {
			return s.startSolve()
		}
	}

	var cmd tea.Cmd
	if s.current.Input == problemgen.InputMultipleChoice {
		s.choices, cmd = s.choices.Update(msg)
	} else {
		s.picker, cmd = s.picker.Update(msg)
	}
	return s, cmd
}

// load resets the per-round widgets when ch differs from the shown
// challenge.
func (s *PlayScreen) load(ch problemgen.Challenge) {
	if ch.ID == s.current.ID && s.board != nil {
		return
	}
	s.seq.Cancel()
	s.solving = false
	s.current = ch
	s.board = minigame.NewBoard(ch)
	s.choices = components.NewChoicePad(ch.Choices)
	s.picker = components.NewNumberPicker(problemgen.PickerMin, problemgen.PickerMax)
}

func (s *PlayScreen) submit(value int) (screen.Screen, tea.Cmd) {
	out := s.game.SubmitAnswer(value)
	if !out.Scored {
		return s, nil
	}
	s.last = &out
	s.banners = banners(out)

	if !out.Correct {
		s.choices.MarkWrong(value)
		s.picker.Reset()
		return s.replaySolve()
	}

	if ch, ok := s.game.CurrentChallenge(); ok {
		s.load(ch)
	}
	return s, s.picker.Init()
}

func (s *PlayScreen) startSolve() (screen.Screen, tea.Cmd) {
	if s.solving || s.board == nil || s.board.Solved() {
		return s, nil
	}
	s.solving = true
	return s, stepCmd(s.seq.Begin())
}

// replaySolve restarts the walkthrough from a fresh board after a miss.
func (s *PlayScreen) replaySolve() (screen.Screen, tea.Cmd) {
	s.seq.Cancel()
	s.solving = false
	s.board = minigame.NewBoard(s.current)
	return s.startSolve()
}

// guided reports whether the round has enough misses to show counting help.
func (s *PlayScreen) guided() bool {
	r, ok := s.game.Round()
	return ok && r.Mistakes >= guidedMistakes
}

func (s *PlayScreen) handleSolveStep(msg solveStepMsg) (screen.Screen, tea.Cmd) {
	if !msg.Run.Active() {
		return s, nil
	}
	s.board.Step(msg.Run)
	if s.board.Solved() {
		s.solving = false
		return s, nil
	}
	return s, stepCmd(msg.Run)
}

func banners(out progression.Outcome) []string {
	var b []string
	if out.ChampionReached {
		b = append(b, "CHAMPION! Every fact is now in review mode")
	} else if out.LevelUp {
		b = append(b, fmt.Sprintf("LEVEL UP! Welcome to level %d", out.Level))
	}
	for _, id := range out.Unlocked {
		b = append(b, fmt.Sprintf("New reward: %s %s", id.Icon(), id.DisplayName()))
	}
	return b
}

// tickCmd returns a 1-second tick command owned by s.
func (s *PlayScreen) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{owner: s, at: t}
	})
}

func stepCmd(run minigame.Run) tea.Cmd {
	return tea.Tick(minigame.StepDelayMs*time.Millisecond, func(time.Time) tea.Msg {
		return solveStepMsg{Run: run}
	})
}
