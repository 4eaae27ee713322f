package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtik/internal/game"
	"github.com/abhisek/mathtik/internal/profile"
	"github.com/abhisek/mathtik/internal/screen"
	"github.com/abhisek/mathtik/internal/ui/layout"
	"github.com/abhisek/mathtik/internal/ui/theme"
)

const (
	rowSound = iota
	rowLanguage
	rowTheme
	rowCount
)

// SettingsScreen edits sound, language and theme preferences.
type SettingsScreen struct {
	game   *game.Game
	cursor int
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen.
func New(g *game.Game) *SettingsScreen {
	return &SettingsScreen{game: g}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < rowCount-1 {
			s.cursor++
		}
	case "enter", "space", "right", "l":
		s.change()
	}
	return s, nil
}

// change applies the next value for the row under the cursor.
func (s *SettingsScreen) change() {
	p := s.game.Profile()
	switch s.cursor {
	case rowSound:
		s.game.ToggleSound()
	case rowLanguage:
		s.game.SetLanguage(string(nextOf(profile.Languages(), p.Language)))
	case rowTheme:
		next := nextOf(profile.Themes(), p.Theme)
		if s.game.SetTheme(string(next)) {
			theme.Use(string(next))
		}
	}
}

// nextOf returns the value after cur in list, wrapping around.
func nextOf[T comparable](list []T, cur T) T {
	for i, v := range list {
		if v == cur {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}

func (s *SettingsScreen) View(width, height int) string {
	p := s.game.Profile()

	sound := "Off"
	if p.SoundOn {
		sound = "On"
	}
	lang := p.Language.DisplayName()
	if p.Language.RTL() {
		lang += " (RTL)"
	}
	rows := []struct{ label, value string }{
		{"Sound", sound},
		{"Language", lang},
		{"Theme", themeLabel(p.Theme)},
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, r := range rows {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			cursor = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%-10s %s", cursor, r.label, r.value)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n\n")
	}
	return b.String()
}

func themeLabel(t profile.Theme) string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}
