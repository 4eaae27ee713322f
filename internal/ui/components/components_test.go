package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	if len(s) == 1 {
		return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
	}
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	panic("unsupported key " + s)
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestChoicePadNumberKeyChooses(t *testing.T) {
	c := NewChoicePad([]int{12, 15, 18, 20})

	c, cmd := c.Update(key("3"))

	msg, ok := runCmd(t, cmd).(ChoiceMsg)
	if !ok {
		t.Fatal("expected ChoiceMsg")
	}
	if msg.Value != 18 {
		t.Errorf("Value = %d, want 18", msg.Value)
	}
	if c.Selected != 2 {
		t.Errorf("Selected = %d, want 2", c.Selected)
	}
}

func TestChoicePadArrowsThenEnter(t *testing.T) {
	c := NewChoicePad([]int{1, 2, 3, 4})

	c, _ = c.Update(key("right"))
	c, _ = c.Update(key("right"))
	_, cmd := c.Update(key("enter"))

	if got := runCmd(t, cmd).(ChoiceMsg).Value; got != 3 {
		t.Errorf("Value = %d, want 3", got)
	}
}

func TestChoicePadOutOfRangeDigitIgnored(t *testing.T) {
	c := NewChoicePad([]int{1, 2, 3, 4})

	_, cmd := c.Update(key("9"))
	if cmd != nil {
		t.Error("expected no command for out-of-range digit")
	}
}

func TestNumberPickerStepsAndClamps(t *testing.T) {
	p := NewNumberPicker(0, 100)

	p, _ = p.Update(key("up"))
	if v, ok := p.Value(); !ok || v != 0 {
		t.Fatalf("Value = %d, %v; want 0, true", v, ok)
	}
	p, _ = p.Update(key("down"))
	if v, _ := p.Value(); v != 0 {
		t.Errorf("Value = %d, want clamp at 0", v)
	}

	p.Model.SetValue("99")
	p, _ = p.Update(key("up"))
	p, _ = p.Update(key("up"))
	if v, _ := p.Value(); v != 100 {
		t.Errorf("Value = %d, want clamp at 100", v)
	}
}

func TestNumberPickerEnterEmitsPick(t *testing.T) {
	p := NewNumberPicker(0, 100)
	p.Model.SetValue("42")

	_, cmd := p.Update(key("enter"))

	if got := runCmd(t, cmd).(PickMsg).Value; got != 42 {
		t.Errorf("Value = %d, want 42", got)
	}
}

func TestNumberPickerEnterWithoutValueIgnored(t *testing.T) {
	p := NewNumberPicker(0, 100)

	_, cmd := p.Update(key("enter"))
	if cmd != nil {
		t.Error("expected no command with empty picker")
	}
}

func TestNumberPickerRejectsLetters(t *testing.T) {
	p := NewNumberPicker(0, 100)

	p, _ = p.Update(key("x"))
	if p.Model.Value() != "" {
		t.Errorf("expected letters ignored, got %q", p.Model.Value())
	}
}
