package rewardshelf

import (
	"strings"
	"testing"

	"github.com/abhisek/mathtik/internal/profile"
	"github.com/abhisek/mathtik/internal/rewards"
)

func TestRewardShelfScreen_ShowsLockedCosts(t *testing.T) {
	view := New(profile.Default()).View(100, 30)
	if !strings.Contains(view, "50 points") {
		t.Errorf("expected star cost in view, got %q", view)
	}
	if !strings.Contains(view, "0 of 4 rewards") {
		t.Errorf("expected reward count in view, got %q", view)
	}
}

func TestRewardShelfScreen_AllUnlocked(t *testing.T) {
	p := profile.Default()
	p.Points = 500
	p.Unlocked.Unlock(p.Points)

	view := New(p).View(100, 30)
	if !strings.Contains(view, "every reward") {
		t.Errorf("expected completion message, got %q", view)
	}
	if strings.Count(view, "unlocked") != len(rewards.Catalog()) {
		t.Errorf("expected %d unlocked rows", len(rewards.Catalog()))
	}
}
