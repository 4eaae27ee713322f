package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtik/internal/profile"
	"github.com/abhisek/mathtik/internal/router"
	"github.com/abhisek/mathtik/internal/screen"
	"github.com/abhisek/mathtik/internal/session"
	"github.com/abhisek/mathtik/internal/ui/layout"
	"github.com/abhisek/mathtik/internal/ui/theme"
)

// SummaryScreen displays the result of a finished session.
type SummaryScreen struct {
	summary session.Summary
	profile profile.Profile
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sum session.Summary, p profile.Profile) *SummaryScreen {
	return &SummaryScreen{summary: sum, profile: p}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answers: %d        Correct: %d        Accuracy: %.0f%%",
		sum.Attempts, sum.Correct, sum.Accuracy()*100)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(0, min(width-8, 60))))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	p := s.profile
	b.WriteString(center.Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Level %d   ★ %d points   Best streak %d", p.Level, p.Points, p.BestStreak)))
	b.WriteString("\n")

	if next, ok := p.Unlocked.NextReward(); ok {
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d more points to unlock %s %s",
				max(0, next.Cost-p.Points), next.ID.Icon(), next.ID.DisplayName())))
		b.WriteString("\n")
	}
	if p.Champion {
		b.WriteString(center.Foreground(theme.Highlight).Bold(true).Render("Champion!"))
		b.WriteString("\n")
	}

	return b.String()
}
