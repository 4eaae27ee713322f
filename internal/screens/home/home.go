package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtik/internal/game"
	"github.com/abhisek/mathtik/internal/router"
	"github.com/abhisek/mathtik/internal/screen"
	"github.com/abhisek/mathtik/internal/screens/factmap"
	"github.com/abhisek/mathtik/internal/screens/history"
	"github.com/abhisek/mathtik/internal/screens/play"
	"github.com/abhisek/mathtik/internal/screens/rewardshelf"
	"github.com/abhisek/mathtik/internal/screens/settings"
	"github.com/abhisek/mathtik/internal/store"
	"github.com/abhisek/mathtik/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	game       *game.Game
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. events may be nil, in which case the
// history entry is disabled.
func New(g *game.Game, events store.EventRepo) *HomeScreen {
	menuLabels := []string{"PLAY", "FACT MAP", "REWARDS", "HISTORY", "SETTINGS", "EXIT GAME"}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: push(func() screen.Screen { return play.New(g) })},
		{Label: menuLabels[1], Action: push(func() screen.Screen { return factmap.New(g) })},
		{Label: menuLabels[2], Action: push(func() screen.Screen { return rewardshelf.New(g.Profile()) })},
		{Label: menuLabels[3], Action: push(func() screen.Screen { return history.New(events) }), Disabled: events == nil},
		{Label: menuLabels[4], Action: push(func() screen.Screen { return settings.New(g) })},
		{Label: menuLabels[5], Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		game:       g,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	p := h.game.Profile()
	stats := h.game.MasteryStats()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(p.Champion, p.Streak, stats.Due), cw))
	}

	sections = append(sections, renderStatsBar(p.Level, p.Points, stats.Due, cw, compact))

	disabled := make(map[int]bool)
	for i, item := range h.menu.Items {
		disabled[i] = item.Disabled
	}
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw, disabled))
	}

	if last, ok := h.game.LastSession(); ok {
		sections = append(sections, renderLastSession(last.Attempts, last.Correct, last.Duration.Round(time.Second), cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// mascotFor picks the mascot mood from the learner's state.
func mascotFor(champion bool, streak, due int) MascotVariant {
	switch {
	case due >= 3:
		return MascotAlert
	case champion || streak >= 5:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}
