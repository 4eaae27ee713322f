package problemgen

import "github.com/abhisek/mathtik/internal/facts"

// Challenge is one presented instance of a fact. It is immutable once
// built; a new round always gets a new Challenge with a new ID.
type Challenge struct {
	// ID is unique per challenge, so repeating the same fact in a later
	// round is distinguishable from the current one.
	ID string

	Op     facts.Operator
	A      int
	B      int
	Answer int

	// Choices holds exactly 4 distinct non-negative values, one of which is
	// Answer. Populated only when Input is InputMultipleChoice.
	Choices []int

	Variant Variant
	Input   InputMode

	// Review is true when the fact was picked from the mistakes queue or
	// the due set rather than drawn fresh.
	Review bool
	Source Source
}

// Signature returns the canonical fact key of the challenge.
func (c Challenge) Signature() facts.Signature {
	return facts.NewSignature(c.Op, c.A, c.B)
}

// Question renders the prompt, e.g. "6 × 7".
func (c Challenge) Question() string {
	return facts.Fact{Op: c.Op, A: c.A, B: c.B}.Question()
}

// IsCorrect reports whether value answers the challenge.
func (c Challenge) IsCorrect(value int) bool {
	return value == c.Answer
}

// Source records why the scheduler picked a fact.
type Source string

const (
	SourceMistake Source = "mistake"
	SourceDue     Source = "due"
	SourceFresh   Source = "fresh"
	SourcePrior   Source = "prior"
	SourceReview  Source = "review"
)

// InputMode is how the child answers.
type InputMode string

const (
	InputMultipleChoice InputMode = "choice"
	InputNumberPicker   InputMode = "picker"
)

// Number picker bounds.
const (
	PickerMin = 0
	PickerMax = 100
)

// Rand is the randomness the generator needs. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}
