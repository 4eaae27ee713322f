package problemgen

import (
	"fmt"
	"sync/atomic"

	"github.com/abhisek/mathtik/internal/facts"
)

// DefaultMultipleChoiceRate is the share of challenges answered by
// picking from four choices rather than the number picker.
const DefaultMultipleChoiceRate = 0.75

// Generator packages facts into challenges.
type Generator struct {
	rng    Rand
	mcRate float64
	seq    atomic.Uint64
}

// NewGenerator returns a Generator drawing from rng. A zero or negative
// mcRate falls back to DefaultMultipleChoiceRate.
func NewGenerator(rng Rand, mcRate float64) *Generator {
	if mcRate <= 0 {
		mcRate = DefaultMultipleChoiceRate
	}
	return &Generator{rng: rng, mcRate: mcRate}
}

// Build creates a new Challenge for f.
func (g *Generator) Build(f facts.Fact, source Source) Challenge {
	n := g.seq.Add(1)
	ch := Challenge{
		ID:      fmt.Sprintf("%s#%d", f.Signature(), n),
		Op:      f.Op,
		A:       f.A,
		B:       f.B,
		Answer:  f.Answer,
		Variant: SelectVariant(f.Op, f.A, f.B),
		Input:   InputNumberPicker,
		Review:  source == SourceMistake || source == SourceDue,
		Source:  source,
	}
	if g.rng.Float64() < g.mcRate {
		ch.Input = InputMultipleChoice
		ch.Choices = MakeChoices(f.Answer, g.rng)
	}
	return ch
}
