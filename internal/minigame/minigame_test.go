package minigame

import (
	"slices"
	"testing"

	"github.com/abhisek/mathtik/internal/facts"
	"github.com/abhisek/mathtik/internal/problemgen"
)

func challenge(op facts.Operator, a, b, answer int) problemgen.Challenge {
	return problemgen.Challenge{Op: op, A: a, B: b, Answer: answer, Variant: problemgen.SelectVariant(op, a, b)}
}

func TestSequencer_StaleRunInactive(t *testing.T) {
	var s Sequencer
	first := s.Begin()
	if !first.Active() {
		t.Fatal("fresh run should be active")
	}
	second := s.Begin()
	if first.Active() {
		t.Error("first run should be superseded")
	}
	if !second.Active() {
		t.Error("second run should be active")
	}
	s.Cancel()
	if second.Active() {
		t.Error("run should be inactive after Cancel")
	}
	if (Run{}).Active() {
		t.Error("zero Run should never be active")
	}
}

func TestAutoSolve_GroupVariant(t *testing.T) {
	var s Sequencer
	b := NewBoard(challenge(facts.Multiply, 3, 4, 12))
	if b.Remaining() != 12 {
		t.Fatalf("remaining = %d, want 12", b.Remaining())
	}

	run := s.Begin()
	steps := 0
	for b.Step(run) {
		steps++
	}
	if steps != 12 {
		t.Errorf("steps = %d, want 12", steps)
	}
	if !b.Solved() || b.Pool != 12 {
		t.Errorf("solved %v pool %d", b.Solved(), b.Pool)
	}
	if !slices.Equal(b.CountingHints(), []int{4, 8, 12}) {
		t.Errorf("hints = %v", b.CountingHints())
	}
}

func TestAutoSolve_DivideVariant(t *testing.T) {
	var s Sequencer
	b := NewBoard(challenge(facts.Divide, 12, 4, 3))
	run := s.Begin()
	for b.Step(run) {
	}
	if !b.Solved() {
		t.Fatal("board should be solved")
	}
	if !slices.Equal(b.Groups, []int{3, 3, 3, 3}) {
		t.Errorf("friends = %v, want even split of 3", b.Groups)
	}
}

func TestAutoSolve_StaleStepsNeverMutate(t *testing.T) {
	var s Sequencer
	b := NewBoard(challenge(facts.Multiply, 2, 5, 10))

	old := s.Begin()
	if !b.Step(old) {
		t.Fatal("first step should apply")
	}

	// The challenge was replaced mid-animation.
	s.Cancel()
	before := slices.Clone(b.Groups)
	pool := b.Pool
	for i := 0; i < 20; i++ {
		if b.Step(old) {
			t.Fatal("stale run applied a step")
		}
	}
	if !slices.Equal(b.Groups, before) || b.Pool != pool {
		t.Errorf("board changed: groups %v pool %d", b.Groups, b.Pool)
	}
}

func TestBoard_ManualMoves(t *testing.T) {
	b := NewBoard(challenge(facts.Multiply, 2, 2, 4))
	if b.Deal(0) {
		t.Error("Deal should be rejected on a group board")
	}
	if !b.Collect(0) || !b.Collect(0) {
		t.Fatal("collect from group 0 failed")
	}
	if b.Collect(0) {
		t.Error("collect from an empty group should fail")
	}
	if b.Collect(5) {
		t.Error("collect out of range should fail")
	}

	d := NewBoard(challenge(facts.Divide, 6, 2, 3))
	if d.Collect(0) {
		t.Error("Collect should be rejected on a divide board")
	}
	if !d.Deal(1) || d.Pool != 5 || d.Groups[1] != 1 {
		t.Errorf("deal failed: pool %d groups %v", d.Pool, d.Groups)
	}
}

func TestStacks(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{3, []int{3}},
		{5, []int{5}},
		{12, []int{5, 5, 2}},
		{24, []int{5, 5, 5, 5, 4}},
	}
	for _, tt := range tests {
		if got := Stacks(tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("Stacks(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
