package engine

import (
	"github.com/deitrix/brickfall/piece"
	"github.com/deitrix/brickfall/rng"
)

// Queue is the fixed-size line of upcoming kinds. Every dequeue refills it, so it always
// holds the same number of entries.
type Queue struct {
	kinds   []piece.Kind
	rand    *rng.Generator
	changed bool
}

func NewQueue(size int, r *rng.Generator) *Queue {
	q := &Queue{
		kinds:   make([]piece.Kind, size),
		rand:    r,
		changed: true,
	}
	for i := range q.kinds {
		q.kinds[i] = q.next()
	}
	return q
}

func (q *Queue) next() piece.Kind {
	return piece.Kinds[q.rand.Range(len(piece.Kinds))]
}

// Dequeue removes and returns the front kind and appends a freshly sampled one.
func (q *Queue) Dequeue() piece.Kind {
	k := q.kinds[0]
	copy(q.kinds, q.kinds[1:])
	q.kinds[len(q.kinds)-1] = q.next()
	q.changed = true
	return k
}

func (q *Queue) Len() int {
	return len(q.kinds)
}

// Peek returns a copy of the queue, front first.
func (q *Queue) Peek() []piece.Kind {
	out := make([]piece.Kind, len(q.kinds))
	copy(out, q.kinds)
	return out
}

// Changed reports whether the queue moved since the last ClearChanged.
func (q *Queue) Changed() bool {
	return q.changed
}

func (q *Queue) ClearChanged() {
	q.changed = false
}
