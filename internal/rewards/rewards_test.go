package rewards

import (
	"slices"
	"testing"
)

func TestUnlock_Thresholds(t *testing.T) {
	tests := []struct {
		points int
		want   []ID
	}{
		{0, nil},
		{49, nil},
		{50, []ID{Star}},
		{119, []ID{Star}},
		{120, []ID{Star, Rocket}},
		{250, []ID{Star, Rocket, Rainbow}},
		{1000, []ID{Star, Rocket, Rainbow, Unicorn}},
	}
	for _, tt := range tests {
		s := NewSet(nil)
		s.Unlock(tt.points)
		if got := s.IDs(); !slices.Equal(got, tt.want) {
			t.Errorf("Unlock(%d) = %v, want %v", tt.points, got, tt.want)
		}
	}
}

func TestUnlock_ReturnsOnlyNew(t *testing.T) {
	s := NewSet([]string{"star"})
	added := s.Unlock(130)
	if !slices.Equal(added, []ID{Rocket}) {
		t.Errorf("added = %v, want [rocket]", added)
	}
	if added := s.Unlock(130); len(added) != 0 {
		t.Errorf("second unlock added %v", added)
	}
}

func TestUnlock_Monotonic(t *testing.T) {
	s := NewSet(nil)
	s.Unlock(300)
	s.Unlock(10)
	if len(s) != 3 {
		t.Errorf("set shrank to %v", s.IDs())
	}
}

func TestNewSet_IgnoresUnknown(t *testing.T) {
	s := NewSet([]string{"unicorn", "dragon"})
	if !slices.Equal(s.Strings(), []string{"unicorn"}) {
		t.Errorf("Strings() = %v", s.Strings())
	}
}

func TestNextReward(t *testing.T) {
	s := NewSet([]string{"star", "rocket"})
	r, ok := s.NextReward()
	if !ok || r.ID != Rainbow || r.Cost != 250 {
		t.Errorf("NextReward() = %+v, %v", r, ok)
	}
	s.Unlock(400)
	if _, ok := s.NextReward(); ok {
		t.Error("expected no next reward once all unlocked")
	}
}
