package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtik/internal/profile"
	"github.com/abhisek/mathtik/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		Duration: 4*time.Minute + 5*time.Second,
		Attempts: 14,
		Correct:  11,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), profile.Default())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), profile.Default())
	view := s.View(80, 24)
	if !strings.Contains(view, "4:05") {
		t.Errorf("expected duration in view, got %q", view)
	}
	if !strings.Contains(view, "79%") {
		t.Errorf("expected accuracy in view, got %q", view)
	}
}

func TestSummaryScreen_NextRewardHint(t *testing.T) {
	p := profile.Default()
	p.Points = 30
	view := New(testSummary(), p).View(100, 30)
	if !strings.Contains(view, "20 more points") {
		t.Errorf("expected next reward hint, got %q", view)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), profile.Default())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), profile.Default())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), profile.Default())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
