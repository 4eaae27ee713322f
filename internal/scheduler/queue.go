package scheduler

import (
	"slices"

	"github.com/abhisek/mathtik/internal/facts"
)

// MistakeQueue is a FIFO of missed fact signatures. A signature appears
// at most once.
type MistakeQueue struct {
	items []facts.Signature
}

// NewMistakeQueue builds a queue from persisted signatures, dropping
// duplicates while keeping first-seen order.
func NewMistakeQueue(sigs []facts.Signature) *MistakeQueue {
	q := &MistakeQueue{}
	for _, s := range sigs {
		q.Push(s)
	}
	return q
}

// Push appends sig unless it is already queued. Reports whether it was added.
func (q *MistakeQueue) Push(sig facts.Signature) bool {
	if q.Contains(sig) {
		return false
	}
	q.items = append(q.items, sig)
	return true
}

// Pop removes and returns the head of the queue.
func (q *MistakeQueue) Pop() (facts.Signature, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	head := q.items[0]
	q.items = slices.Delete(q.items, 0, 1)
	return head, true
}

// Contains reports whether sig is queued.
func (q *MistakeQueue) Contains(sig facts.Signature) bool {
	return slices.Contains(q.items, sig)
}

// Len returns the number of queued signatures.
func (q *MistakeQueue) Len() int { return len(q.items) }

// Items returns a copy of the queue, head first.
func (q *MistakeQueue) Items() []facts.Signature {
	return slices.Clone(q.items)
}

// Clone returns an independent copy.
func (q *MistakeQueue) Clone() *MistakeQueue {
	return &MistakeQueue{items: slices.Clone(q.items)}
}
