package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtik/internal/ui/theme"
)

// ChoicePad is a multiple-choice answer selector. Options are picked with
// the arrows plus Enter or directly with the number keys.
type ChoicePad struct {
	Options  []int
	Selected int
	// Wrong marks options already tried and missed in this round.
	Wrong map[int]bool
}

// ChoiceMsg is emitted when an option is chosen.
type ChoiceMsg struct {
	Value int
}

// NewChoicePad creates a selector over options.
func NewChoicePad(options []int) ChoicePad {
	return ChoicePad{
		Options: options,
		Wrong:   make(map[int]bool),
	}
}

// Init returns nil.
func (c ChoicePad) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c ChoicePad) Update(msg tea.Msg) (ChoicePad, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "left", "up", "h", "k":
		if c.Selected > 0 {
			c.Selected--
		}
		return c, nil
	case "right", "down", "l", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
		return c, nil
	case "enter", "space":
		return c, c.choose(c.Selected)
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Options) {
		c.Selected = n - 1
		return c, c.choose(c.Selected)
	}
	return c, nil
}

func (c ChoicePad) choose(i int) tea.Cmd {
	v := c.Options[i]
	return func() tea.Msg { return ChoiceMsg{Value: v} }
}

// MarkWrong records a missed option so it renders dimmed.
func (c *ChoicePad) MarkWrong(v int) {
	c.Wrong[v] = true
}

// View renders the options as a row of tiles.
func (c ChoicePad) View() string {
	tiles := make([]string, 0, len(c.Options))
	for i, opt := range c.Options {
		label := fmt.Sprintf("%d) %d", i+1, opt)
		style := lipgloss.NewStyle().
			Width(10).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

		switch {
		case c.Wrong[opt]:
			style = style.Foreground(theme.Error).BorderForeground(theme.Border)
		case i == c.Selected:
			style = style.Bold(true).Foreground(theme.BgDark).
				Background(theme.Highlight).BorderForeground(theme.Highlight)
		default:
			style = style.Foreground(theme.Text).BorderForeground(theme.Border)
		}
		tiles = append(tiles, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
