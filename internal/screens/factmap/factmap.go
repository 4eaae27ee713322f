package factmap

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtik/internal/facts"
	"github.com/abhisek/mathtik/internal/game"
	"github.com/abhisek/mathtik/internal/mastery"
	"github.com/abhisek/mathtik/internal/router"
	"github.com/abhisek/mathtik/internal/screen"
	"github.com/abhisek/mathtik/internal/ui/layout"
	"github.com/abhisek/mathtik/internal/ui/theme"
)

// Cell icons.
const (
	iconUnseen   = "·"
	iconWeak     = "○"
	iconLearning = "◐"
	iconStrong   = "●"
)

// FactMapScreen shows every fact by level, colored by mastery strength.
type FactMapScreen struct {
	bank    *facts.Bank
	table   *mastery.Table
	current int
	levels  []int
	cursor  int
	now     func() time.Time
}

var _ screen.Screen = (*FactMapScreen)(nil)
var _ screen.KeyHintProvider = (*FactMapScreen)(nil)

// New creates a FactMapScreen over the default catalog.
func New(g *game.Game) *FactMapScreen {
	bank := facts.Default()
	s := &FactMapScreen{
		bank:    bank,
		table:   g.Mastery(),
		current: g.Profile().Level,
		levels:  bank.Levels(),
		now:     time.Now,
	}
	for i, l := range s.levels {
		if l == s.current {
			s.cursor = i
		}
	}
	return s
}

func (s *FactMapScreen) Init() tea.Cmd {
	return nil
}

func (s *FactMapScreen) Title() string {
	return "Fact Map"
}

// KeyHints returns the key binding hints for the footer.
func (s *FactMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Level"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FactMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.levels)-1 {
				s.cursor++
			}
		case "enter":
			return s, s.selectLevel()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *FactMapScreen) View(width, height int) string {
	if len(s.levels) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, s.renderLegend(width))
	lines = append(lines, "")
	for i, level := range s.levels {
		lines = append(lines, s.renderLevelRow(level, i == s.cursor))
	}
	return strings.Join(lines, "\n")
}

// selectLevel opens the detail view for the level under the cursor.
func (s *FactMapScreen) selectLevel() tea.Cmd {
	if s.cursor < 0 || s.cursor >= len(s.levels) {
		return nil
	}
	level := s.levels[s.cursor]
	detail := newLevelDetail(level, s.bank.ByLevel(level), s.table, s.now())
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *FactMapScreen) renderLegend(width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		fmt.Sprintf("%s new   %s weak   %s learning   %s strong",
			dim.Render(iconUnseen),
			cellStyle(mastery.StrengthWeak).Render(iconWeak),
			cellStyle(mastery.StrengthLearning).Render(iconLearning),
			cellStyle(mastery.StrengthStrong).Render(iconStrong),
		))
}

// renderLevelRow renders one level with a cell per fact, products first.
func (s *FactMapScreen) renderLevelRow(level int, selected bool) string {
	var mul, div []string
	for _, f := range s.bank.ByLevel(level) {
		cell := s.renderCell(f.Signature())
		if f.Op == facts.Divide {
			div = append(div, cell)
		} else {
			mul = append(mul, cell)
		}
	}

	cursor := "  "
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		cursor = "▸ "
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	label := fmt.Sprintf("Level %2d", level)
	if level == s.current {
		label += " *"
	} else {
		label += "  "
	}

	return fmt.Sprintf("  %s%s   %s %s   %s %s",
		cursor,
		labelStyle.Render(label),
		facts.Multiply.Symbol(), strings.Join(mul, " "),
		facts.Divide.Symbol(), strings.Join(div, " "),
	)
}

func (s *FactMapScreen) renderCell(sig facts.Signature) string {
	rec, ok := s.table.Get(sig)
	if !ok {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(iconUnseen)
	}
	st := rec.Strength()
	return cellStyle(st).Render(strengthIcon(st))
}

func strengthIcon(st mastery.Strength) string {
	switch st {
	case mastery.StrengthStrong:
		return iconStrong
	case mastery.StrengthLearning:
		return iconLearning
	default:
		return iconWeak
	}
}

func cellStyle(st mastery.Strength) lipgloss.Style {
	switch st {
	case mastery.StrengthStrong:
		return lipgloss.NewStyle().Foreground(theme.Success)
	case mastery.StrengthLearning:
		return lipgloss.NewStyle().Foreground(theme.Highlight)
	default:
		return lipgloss.NewStyle().Foreground(theme.Error)
	}
}
