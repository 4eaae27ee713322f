package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtik/internal/game"
	"github.com/abhisek/mathtik/internal/logger"
	"github.com/abhisek/mathtik/internal/router"
	"github.com/abhisek/mathtik/internal/screens/play"
	"github.com/abhisek/mathtik/internal/ui/theme"
)

func newTestModel(t *testing.T) (AppModel, *game.Game) {
	t.Helper()
	g, err := game.New(context.Background(), game.Options{Logger: logger.Discard()})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return newAppModel(g, nil), g
}

func TestAppModel_LeavingPlayEndsSession(t *testing.T) {
	m, g := newTestModel(t)

	m.Update(router.PushScreenMsg{Screen: play.New(g)})
	if !g.Session().Active {
		t.Fatal("expected session to start with the play screen")
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	pushSummary := m.router.Update(cmd())

	if g.Session().Active {
		t.Error("expected session to end when leaving play")
	}
	if pushSummary == nil {
		t.Fatal("expected the summary to be pushed")
	}
	if _, ok := pushSummary().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg for the summary")
	}
}

func TestAppModel_EscAtRootIsNoop(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no command at the root screen")
	}
}

func TestAppModel_AppliesSavedTheme(t *testing.T) {
	t.Cleanup(func() { theme.Use(theme.DefaultName) })
	g, err := game.New(context.Background(), game.Options{Logger: logger.Discard()})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	g.SetTheme("barbie")

	newAppModel(g, nil)

	if theme.Current() != theme.BarbieName {
		t.Errorf("palette = %q, want barbie", theme.Current())
	}
}
