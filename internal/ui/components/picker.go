package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtik/internal/ui/theme"
)

// NumberPicker selects an integer in [Min, Max]. Digits can be typed
// directly; the arrows step by one and page keys by ten.
type NumberPicker struct {
	Model textinput.Model
	Min   int
	Max   int
}

// PickMsg is emitted when the picker value is submitted.
type PickMsg struct {
	Value int
}

// NewNumberPicker creates a focused picker with an empty entry.
func NewNumberPicker(lo, hi int) NumberPicker {
	ti := textinput.New()
	ti.Placeholder = "?"
	ti.Prompt = ""
	ti.CharLimit = len(strconv.Itoa(hi))
	ti.Focus()

	return NumberPicker{
		Model: ti,
		Min:   lo,
		Max:   hi,
	}
}

// Init returns the initial command.
func (p NumberPicker) Init() tea.Cmd {
	return p.Model.Focus()
}

// Update handles messages.
func (p NumberPicker) Update(msg tea.Msg) (NumberPicker, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		switch key {
		case "up", "k", "+":
			p.set(p.current() + 1)
			return p, nil
		case "down", "j", "-":
			p.set(p.current() - 1)
			return p, nil
		case "pgup":
			p.set(p.current() + 10)
			return p, nil
		case "pgdown":
			p.set(p.current() - 10)
			return p, nil
		case "enter":
			v, ok := p.Value()
			if !ok {
				return p, nil
			}
			return p, func() tea.Msg { return PickMsg{Value: v} }
		}
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

func (p NumberPicker) current() int {
	v, ok := p.Value()
	if !ok {
		return p.Min - 1
	}
	return v
}

func (p *NumberPicker) set(v int) {
	v = min(p.Max, max(p.Min, v))
	p.Model.SetValue(strconv.Itoa(v))
	p.Model.CursorEnd()
}

// Value returns the picked number, clamped to the range. ok is false when
// nothing has been entered.
func (p NumberPicker) Value() (int, bool) {
	v, err := strconv.Atoi(p.Model.Value())
	if err != nil {
		return 0, false
	}
	return min(p.Max, max(p.Min, v)), true
}

// Reset clears the entry.
func (p *NumberPicker) Reset() {
	p.Model.SetValue("")
}

// View renders the picker.
func (p NumberPicker) View() string {
	arrows := lipgloss.NewStyle().Foreground(theme.TextDim)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Highlight).
		Padding(0, 1).
		Render(p.Model.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, arrows.Render("▼ "), box, arrows.Render(" ▲"))
}
