package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtik/internal/router"
	"github.com/abhisek/mathtik/internal/screen"
	"github.com/abhisek/mathtik/internal/store"
	"github.com/abhisek/mathtik/internal/ui/layout"
	"github.com/abhisek/mathtik/internal/ui/theme"
)

// historyLimit caps how many past sessions are listed.
const historyLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionEvent
	Err      error
}

// HistoryScreen displays past sessions.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionEvent
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.eventRepo.QuerySessionEvents(context.Background(), store.QueryOpts{Limit: historyLimit})
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	start := 0
	if visible := height - 2; visible > 0 && s.selected >= visible {
		start = s.selected - visible + 1
	}

	for i := start; i < len(s.sessions); i++ {
		if i-start >= height-2 && height > 2 {
			break
		}
		sess := s.sessions[i]
		dateStr := sess.Timestamp.Format("Jan 02, 2006 15:04")
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60

		var accuracy float64
		if sess.Attempts > 0 {
			accuracy = float64(sess.Correct) / float64(sess.Attempts) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d:%02d  %d answers  %.0f%% correct",
			prefix, dateStr, mins, secs, sess.Attempts, accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
