package rewardshelf

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtik/internal/profile"
	"github.com/abhisek/mathtik/internal/rewards"
	"github.com/abhisek/mathtik/internal/router"
	"github.com/abhisek/mathtik/internal/screen"
	"github.com/abhisek/mathtik/internal/ui/components"
	"github.com/abhisek/mathtik/internal/ui/layout"
	"github.com/abhisek/mathtik/internal/ui/theme"
)

// RewardShelfScreen displays every reward and how close the learner is to
// the next one.
type RewardShelfScreen struct {
	profile profile.Profile
}

var _ screen.Screen = (*RewardShelfScreen)(nil)
var _ screen.KeyHintProvider = (*RewardShelfScreen)(nil)

// New creates a new RewardShelfScreen.
func New(p profile.Profile) *RewardShelfScreen {
	return &RewardShelfScreen{profile: p}
}

func (s *RewardShelfScreen) Init() tea.Cmd {
	return nil
}

func (s *RewardShelfScreen) Title() string {
	return "Rewards"
}

func (s *RewardShelfScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RewardShelfScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *RewardShelfScreen) View(width, height int) string {
	p := s.profile
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\n★ %d points   %d of %d rewards\n",
			p.Points, len(p.Unlocked.IDs()), len(rewards.Catalog()))))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(0, min(width-8, 60))))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, r := range rewards.Catalog() {
		var line string
		var style lipgloss.Style
		if p.Unlocked[r.ID] {
			line = fmt.Sprintf("  %s  %-10s  unlocked", r.ID.Icon(), r.ID.DisplayName())
			style = lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
		} else {
			line = fmt.Sprintf("  %s  %-10s  %d points", "?", r.ID.DisplayName(), r.Cost)
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if next, ok := p.Unlocked.NextReward(); ok {
		b.WriteString("\n")
		pct := float64(p.Points) / float64(next.Cost)
		cw := components.ContentWidth(width)
		bar := components.NewProgressBar("Next: "+next.ID.DisplayName(), pct, true, cw-8)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ArcadeCard(bar.View(), cw)))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Success).Bold(true).
			Render("You collected every reward!"))
	}

	return b.String()
}
