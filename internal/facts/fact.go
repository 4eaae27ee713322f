package facts

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator is the arithmetic operation a fact practices.
type Operator string

const (
	Multiply Operator = "mul"
	Divide   Operator = "div"
)

// Symbol returns the operator as shown to the child.
func (o Operator) Symbol() string {
	switch o {
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return "?"
	}
}

// MinLevel and MaxLevel bound the catalog's difficulty tiers.
const (
	MinLevel = 1
	MaxLevel = 10
)

// Fact is a single arithmetic fact from the catalog.
// For Divide facts A is the dividend and B the divisor.
type Fact struct {
	ID     string   `json:"id"`
	Op     Operator `json:"op"`
	A      int      `json:"a"`
	B      int      `json:"b"`
	Answer int      `json:"answer"`
	Level  int      `json:"level"`
}

// Signature returns the canonical key used by the mastery table and
// mistakes queue.
func (f Fact) Signature() Signature {
	return NewSignature(f.Op, f.A, f.B)
}

// Question renders the fact as "6 × 7".
func (f Fact) Question() string {
	return fmt.Sprintf("%d %s %d", f.A, f.Op.Symbol(), f.B)
}

// check verifies the arithmetic invariant of a fact.
func (f Fact) check() error {
	switch f.Op {
	case Multiply:
		if f.A*f.B != f.Answer {
			return fmt.Errorf("fact %s: %d × %d != %d", f.ID, f.A, f.B, f.Answer)
		}
	case Divide:
		if f.B == 0 || f.B*f.Answer != f.A {
			return fmt.Errorf("fact %s: %d ÷ %d != %d", f.ID, f.A, f.B, f.Answer)
		}
	default:
		return fmt.Errorf("fact %s: unknown operator %q", f.ID, f.Op)
	}
	if f.Level < MinLevel || f.Level > MaxLevel {
		return fmt.Errorf("fact %s: level %d out of range", f.ID, f.Level)
	}
	return nil
}

// Signature identifies a fact independently of any challenge id,
// e.g. "m:6x7" or "d:12/4".
type Signature string

// NewSignature builds the signature for an operator and operand pair.
func NewSignature(op Operator, a, b int) Signature {
	if op == Divide {
		return Signature(fmt.Sprintf("d:%d/%d", a, b))
	}
	return Signature(fmt.Sprintf("m:%dx%d", a, b))
}

// Parse splits a signature back into operator and operands.
func (s Signature) Parse() (Operator, int, int, error) {
	str := string(s)
	var (
		op  Operator
		sep string
	)
	switch {
	case strings.HasPrefix(str, "m:"):
		op, sep = Multiply, "x"
	case strings.HasPrefix(str, "d:"):
		op, sep = Divide, "/"
	default:
		return "", 0, 0, fmt.Errorf("invalid signature %q", str)
	}

	left, right, ok := strings.Cut(str[2:], sep)
	if !ok {
		return "", 0, 0, fmt.Errorf("invalid signature %q", str)
	}
	a, err := strconv.Atoi(left)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid signature %q: %w", str, err)
	}
	b, err := strconv.Atoi(right)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid signature %q: %w", str, err)
	}
	if op == Divide && (b == 0 || a%b != 0) {
		return "", 0, 0, fmt.Errorf("invalid signature %q: %d is not divisible by %d", str, a, b)
	}
	return op, a, b, nil
}

// Fact rebuilds a fact from the signature alone. Used when a persisted
// signature no longer matches anything in the catalog.
func (s Signature) Fact() (Fact, error) {
	op, a, b, err := s.Parse()
	if err != nil {
		return Fact{}, err
	}
	f := Fact{ID: string(s), Op: op, A: a, B: b, Level: MaxLevel}
	if op == Divide {
		f.Answer = a / b
	} else {
		f.Answer = a * b
	}
	return f, nil
}
