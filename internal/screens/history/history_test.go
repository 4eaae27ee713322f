package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtik/internal/store"
)

type fakeEvents struct {
	sessions []store.SessionEvent
	err      error
	opts     store.QueryOpts
}

func (f *fakeEvents) AppendAnswerEvent(context.Context, store.AnswerEventData) error   { return nil }
func (f *fakeEvents) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (f *fakeEvents) FactAccuracy(context.Context) ([]store.FactAccuracy, error)      { return nil, nil }
func (f *fakeEvents) QuerySessionEvents(_ context.Context, opts store.QueryOpts) ([]store.SessionEvent, error) {
	f.opts = opts
	return f.sessions, f.err
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	msg := s.Init()()
	s.Update(msg)
}

func TestHistoryScreen_ListsSessions(t *testing.T) {
	repo := &fakeEvents{sessions: []store.SessionEvent{
		{
			Sequence:  7,
			Timestamp: time.Date(2026, 2, 3, 16, 30, 0, 0, time.UTC),
			SessionEventData: store.SessionEventData{
				SessionID: "s1", Action: store.SessionActionEnd,
				Attempts: 8, Correct: 6, DurationSecs: 125,
			},
		},
	}}
	s := New(repo)
	load(t, s)

	if repo.opts.Limit != historyLimit {
		t.Errorf("Limit = %d, want %d", repo.opts.Limit, historyLimit)
	}
	view := s.View(100, 20)
	for _, want := range []string{"Feb 03, 2026", "2:05", "8 answers", "75% correct"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(&fakeEvents{})
	load(t, s)

	if !strings.Contains(s.View(80, 20), "No sessions yet") {
		t.Error("expected empty message")
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(&fakeEvents{err: errors.New("disk gone")})
	load(t, s)

	if !strings.Contains(s.View(80, 20), "disk gone") {
		t.Error("expected error message")
	}
}

func TestHistoryScreen_NavigationClamps(t *testing.T) {
	repo := &fakeEvents{sessions: make([]store.SessionEvent, 2)}
	s := New(repo)
	load(t, s)

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	s.Update(down)
	s.Update(down)
	s.Update(down)
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}
