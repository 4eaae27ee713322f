package facts

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
)

//go:embed data/facts.json
var catalogJSON []byte

// ErrEmptyCatalog is returned when a catalog contains no facts.
var ErrEmptyCatalog = errors.New("facts: catalog is empty")

// Bank is the immutable, indexed fact catalog.
type Bank struct {
	facts   []Fact
	byLevel map[int][]Fact
	bySig   map[Signature]Fact
}

// Load parses, validates and indexes a catalog document.
func Load(raw []byte) (*Bank, error) {
	if err := validateCatalog(raw); err != nil {
		return nil, fmt.Errorf("facts: %w", err)
	}

	var doc struct {
		Facts []Fact `json:"facts"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("facts: decode catalog: %w", err)
	}
	return New(doc.Facts)
}

// New indexes an in-memory list of facts, rejecting duplicates and
// facts that fail their arithmetic check.
func New(list []Fact) (*Bank, error) {
	if len(list) == 0 {
		return nil, ErrEmptyCatalog
	}

	b := &Bank{
		facts:   slices.Clone(list),
		byLevel: make(map[int][]Fact),
		bySig:   make(map[Signature]Fact, len(list)),
	}
	ids := make(map[string]bool, len(list))
	for _, f := range b.facts {
		if err := f.check(); err != nil {
			return nil, fmt.Errorf("facts: %w", err)
		}
		if ids[f.ID] {
			return nil, fmt.Errorf("facts: duplicate id %q", f.ID)
		}
		ids[f.ID] = true

		sig := f.Signature()
		if _, dup := b.bySig[sig]; dup {
			return nil, fmt.Errorf("facts: duplicate signature %q", sig)
		}
		b.bySig[sig] = f
		b.byLevel[f.Level] = append(b.byLevel[f.Level], f)
	}
	return b, nil
}

// Len returns the number of facts in the catalog.
func (b *Bank) Len() int { return len(b.facts) }

// All returns every fact in catalog order.
func (b *Bank) All() []Fact {
	return slices.Clone(b.facts)
}

// ByLevel returns the facts tagged with exactly the given level.
func (b *Bank) ByLevel(level int) []Fact {
	return slices.Clone(b.byLevel[level])
}

// Below returns all facts with a level strictly less than level.
func (b *Bank) Below(level int) []Fact {
	var out []Fact
	for _, l := range b.Levels() {
		if l >= level {
			break
		}
		out = append(out, b.byLevel[l]...)
	}
	return out
}

// Levels returns the distinct levels present, ascending.
func (b *Bank) Levels() []int {
	levels := make([]int, 0, len(b.byLevel))
	for l := range b.byLevel {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}

// Lookup finds a fact by signature.
func (b *Bank) Lookup(sig Signature) (Fact, bool) {
	f, ok := b.bySig[sig]
	return f, ok
}

// Resolve returns the catalog fact for sig, or rebuilds one from the
// signature when the catalog no longer carries it.
func (b *Bank) Resolve(sig Signature) (Fact, error) {
	if f, ok := b.bySig[sig]; ok {
		return f, nil
	}
	return sig.Fact()
}

var defaultBank *Bank

func init() {
	var err error
	defaultBank, err = Load(catalogJSON)
	if err != nil {
		panic(fmt.Sprintf("facts: embedded catalog: %v", err))
	}
}

// Default returns the bank built from the embedded catalog.
func Default() *Bank { return defaultBank }
