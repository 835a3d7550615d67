package deck

import (
	"math/rand/v2"
	"slices"
)

// Queue holds one shuffled cycle over a pool: the current item, the items
// not yet shown, and how many have been shown so far.
//
// Every item in the pool is shown exactly once per cycle. When the cycle is
// exhausted the next Advance reshuffles the whole pool, so the first item of
// a new cycle may equal the last item of the previous one.
type Queue[T comparable] struct {
	rng       Rand
	pool      []T
	current   T
	hasCur    bool
	remaining []T
	seen      int
	started   bool
}

// NewQueue creates an empty queue. A nil rng uses the global math/rand/v2
// source.
func NewQueue[T comparable](rng Rand) *Queue[T] {
	if rng == nil {
		rng = globalRand{}
	}
	return &Queue[T]{rng: rng}
}

// StartRound discards any cycle in progress and starts a fresh shuffle of
// pool. An empty pool leaves the queue with no current item.
func (q *Queue[T]) StartRound(pool []T) {
	q.pool = slices.Clone(pool)
	q.started = true
	var zero T
	if len(pool) == 0 {
		q.current = zero
		q.hasCur = false
		q.remaining = nil
		q.seen = 0
		return
	}
	order := Shuffle(q.rng, pool)
	q.current = order[0]
	q.hasCur = true
	q.remaining = order[1:]
	q.seen = 1
}

// Advance moves to the next item of the cycle, reshuffling the pool when the
// cycle is exhausted. It is a no-op on an empty pool.
func (q *Queue[T]) Advance() {
	if len(q.pool) == 0 {
		return
	}
	if len(q.remaining) == 0 {
		q.StartRound(q.pool)
		return
	}
	q.current = q.remaining[0]
	q.remaining = q.remaining[1:]
	q.seen++
}

// Reconcile starts a new round when pool's content differs from the pool
// the current cycle was built from. It reports whether a new round started.
func (q *Queue[T]) Reconcile(pool []T) bool {
	if q.started && slices.Equal(q.pool, pool) {
		return false
	}
	q.StartRound(pool)
	return true
}

// Current returns the item being shown, if any.
func (q *Queue[T]) Current() (T, bool) {
	return q.current, q.hasCur
}

// Remaining returns a copy of the not-yet-shown items of this cycle.
func (q *Queue[T]) Remaining() []T {
	return slices.Clone(q.remaining)
}

// Seen is the 1-based count of items shown in this cycle, 0 on an empty pool.
func (q *Queue[T]) Seen() int { return q.seen }

// Size is the number of items in the pool.
func (q *Queue[T]) Size() int { return len(q.pool) }

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
