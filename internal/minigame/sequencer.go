package minigame

import "sync/atomic"

// Sequencer hands out generation-tagged run tokens. Starting a new run or
// cancelling invalidates every token issued before.
type Sequencer struct {
	gen atomic.Uint64
}

// Run is a token for one auto-solve animation.
type Run struct {
	seq *Sequencer
	gen uint64
}

// Begin supersedes any previous run and returns a token for a new one.
func (s *Sequencer) Begin() Run {
	return Run{seq: s, gen: s.gen.Add(1)}
}

// Cancel invalidates all outstanding tokens.
func (s *Sequencer) Cancel() {
	s.gen.Add(1)
}

// Active reports whether the token is still the current generation.
func (r Run) Active() bool {
	return r.seq != nil && r.seq.gen.Load() == r.gen
}

// Generation returns the token's generation number.
func (r Run) Generation() uint64 { return r.gen }
