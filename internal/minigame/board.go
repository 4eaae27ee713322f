package minigame

import (
	"github.com/abhisek/mathtik/internal/problemgen"
)

// StepDelayMs is the pause between auto-solve steps.
const StepDelayMs = 180

// Board is the state of one mini-game round.
//
// Group variants start with A groups of B items and an empty pool; the
// round is solved once every item sits in the pool. Divide variants start
// with A items in the pool and B empty friends; the round is solved once
// the pool is dealt out evenly.
type Board struct {
	Variant problemgen.Variant
	Groups  []int
	Pool    int
	total   int
	dealt   int
	per     int
}

// NewBoard lays out the board for a challenge.
func NewBoard(ch problemgen.Challenge) *Board {
	b := &Board{Variant: ch.Variant}
	if ch.Variant.IsDivide() {
		b.Groups = make([]int, max(ch.B, 1))
		b.Pool = ch.A
		b.total = ch.A
		b.per = ch.A / len(b.Groups)
		return b
	}
	b.Groups = make([]int, ch.A)
	for i := range b.Groups {
		b.Groups[i] = ch.B
	}
	b.total = ch.A * ch.B
	b.per = ch.B
	return b
}

// Solved reports whether the round's objective has been reached.
func (b *Board) Solved() bool {
	if b.Variant.IsDivide() {
		return b.Pool == 0
	}
	return b.Pool == b.total
}

// Collect moves one item from group i to the pool.
func (b *Board) Collect(i int) bool {
	if b.Variant.IsDivide() || i < 0 || i >= len(b.Groups) || b.Groups[i] == 0 {
		return false
	}
	b.Groups[i]--
	b.Pool++
	return true
}

// Deal moves one item from the pool to friend i.
func (b *Board) Deal(i int) bool {
	if !b.Variant.IsDivide() || i < 0 || i >= len(b.Groups) || b.Pool == 0 {
		return false
	}
	b.Pool--
	b.Groups[i]++
	b.dealt++
	return true
}

// next performs one auto-solve move: the first non-empty group is
// collected, or the pool is dealt round-robin.
func (b *Board) next() bool {
	if b.Solved() {
		return false
	}
	if b.Variant.IsDivide() {
		return b.Deal(b.dealt % len(b.Groups))
	}
	for i, n := range b.Groups {
		if n > 0 {
			return b.Collect(i)
		}
	}
	return false
}

// Step applies one auto-solve move if run is still current. Moves from a
// stale run never touch the board.
func (b *Board) Step(run Run) bool {
	if !run.Active() {
		return false
	}
	return b.next()
}

// Remaining returns how many auto-solve moves are left.
func (b *Board) Remaining() int {
	if b.Variant.IsDivide() {
		return b.Pool
	}
	return b.total - b.Pool
}

// CountingHints returns running totals across the groups,
// e.g. 7, 14, 21 for three groups of seven.
func (b *Board) CountingHints() []int {
	out := make([]int, len(b.Groups))
	sum := 0
	for i := range b.Groups {
		sum += b.per
		out[i] = sum
	}
	return out
}

// Stacks splits n coins into display stacks of at most 5, largest first.
func Stacks(n int) []int {
	var out []int
	r := max(0, n)
	for r >= 5 {
		out = append(out, 5)
		r -= 5
	}
	for _, k := range []int{4, 3, 2, 1} {
		for r >= k {
			out = append(out, k)
			r -= k
		}
	}
	return out
}
