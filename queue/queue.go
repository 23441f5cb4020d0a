// Package queue produces the upcoming pieces.
//
// Every kind is drawn independently and uniformly, so the same kind can come up many times in a
// row. This is weaker than a 7-bag randomizer and is kept on purpose.
package queue

import (
	"math/rand/v2"
	"slices"

	"github.com/deitrix/tetra/piece"
)

// Depth is the number of upcoming kinds kept buffered.
const Depth = 5

// Queue is a buffer of upcoming kinds, refilled to Depth from its random source.
type Queue struct {
	draw func() piece.Kind
	next []piece.Kind
}

// New returns an empty queue drawing uniformly from src. A nil src uses a randomly seeded PCG.
func New(src rand.Source) *Queue {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	rng := rand.New(src)
	return NewFunc(func() piece.Kind {
		return piece.Kinds[rng.IntN(piece.KindCount)]
	})
}

// NewFunc returns an empty queue filled by calling draw. It lets callers replay a fixed
// sequence. draw must return a valid kind.
func NewFunc(draw func() piece.Kind) *Queue {
	return &Queue{
		draw: draw,
		next: make([]piece.Kind, 0, Depth),
	}
}

// Refill appends drawn kinds until Depth are buffered.
func (q *Queue) Refill() {
	for len(q.next) < Depth {
		q.next = append(q.next, q.draw())
	}
}

// Dequeue refills the buffer and removes its front kind.
func (q *Queue) Dequeue() piece.Kind {
	q.Refill()
	k := q.next[0]
	q.next = slices.Delete(q.next, 0, 1)
	return k
}

// Peek returns a copy of the buffered kinds, front first.
func (q *Queue) Peek() []piece.Kind {
	return slices.Clone(q.next)
}

// Len returns the number of buffered kinds.
func (q *Queue) Len() int {
	return len(q.next)
}

// Reset discards the buffer. The random source keeps its state.
func (q *Queue) Reset() {
	q.next = q.next[:0]
}
