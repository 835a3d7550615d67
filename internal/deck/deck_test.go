package deck

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same draw, clamped into range.
type fixedRand struct{ pick int }

func (f fixedRand) IntN(n int) int {
	if f.pick < 0 || f.pick >= n {
		return n - 1
	}
	return f.pick
}

// lastRand always picks the top of the range, so Shuffle keeps the order.
type lastRand struct{}

func (lastRand) IntN(n int) int { return n - 1 }

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestShuffle_Permutation(t *testing.T) {
	in := []string{"あ", "い", "う", "え", "お", "か", "き"}
	orig := slices.Clone(in)
	rng := seeded(1)

	for i := 0; i < 50; i++ {
		out := Shuffle(rng, in)
		require.Len(t, out, len(in))
		assert.ElementsMatch(t, in, out)
		assert.Equal(t, orig, in, "input must not be mutated")
	}
}

func TestShuffle_Empty(t *testing.T) {
	assert.Empty(t, Shuffle[int](seeded(1), nil))
	assert.Equal(t, []int{7}, Shuffle(seeded(1), []int{7}))
}

func TestShuffle_ZeroSourceRotates(t *testing.T) {
	// Every draw is 0: each position swaps with the head.
	out := Shuffle(fixedRand{pick: 0}, []int{1, 2, 3})
	assert.Equal(t, []int{2, 3, 1}, out)
}

func TestStartRound_DocumentedSplit(t *testing.T) {
	q := NewQueue[string](lastRand{})
	q.StartRound([]string{"あ", "い"})

	cur, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, "あ", cur)
	assert.Equal(t, []string{"い"}, q.Remaining())
	assert.Equal(t, 1, q.Seen())

	q.Advance()
	cur, _ = q.Current()
	assert.Equal(t, "い", cur)
	assert.Empty(t, q.Remaining())
	assert.Equal(t, 2, q.Seen())

	q.Advance()
	cur, ok = q.Current()
	require.True(t, ok)
	assert.Contains(t, []string{"あ", "い"}, cur)
	assert.Equal(t, 1, q.Seen())
	assert.Len(t, q.Remaining(), 1)
}

func TestStartRound_ZeroSource(t *testing.T) {
	q := NewQueue[string](fixedRand{pick: 0})
	q.StartRound([]string{"あ", "い"})

	cur, _ := q.Current()
	assert.Equal(t, "い", cur)
	assert.Equal(t, []string{"あ"}, q.Remaining())
	assert.Equal(t, 1, q.Seen())
}

func TestStartRound_UniformLead(t *testing.T) {
	pool := []int{0, 1, 2, 3}
	q := NewQueue[int](seeded(42))

	const trials = 40000
	counts := make([]int, len(pool))
	for i := 0; i < trials; i++ {
		q.StartRound(pool)
		cur, _ := q.Current()
		counts[cur]++
	}

	want := float64(trials) / float64(len(pool))
	for item, c := range counts {
		assert.InDelta(t, want, float64(c), want*0.05, "item %d led %d times", item, c)
	}
}

func TestAdvance_VisitsEachOncePerCycle(t *testing.T) {
	pool := []int{1, 2, 3, 4, 5, 6, 7, 8}
	q := NewQueue[int](seeded(7))
	q.StartRound(pool)

	visited := map[int]int{}
	for i := 0; i < len(pool); i++ {
		cur, ok := q.Current()
		require.True(t, ok)
		visited[cur]++
		assert.Equal(t, i+1, q.Seen())
		assert.Equal(t, len(pool)-len(q.Remaining()), q.Seen())
		if i < len(pool)-1 {
			q.Advance()
		}
	}

	require.Len(t, visited, len(pool))
	for item, n := range visited {
		assert.Equal(t, 1, n, "item %d shown %d times", item, n)
	}
}

func TestAdvance_ReshufflesAfterExhaustion(t *testing.T) {
	pool := []int{1, 2, 3}
	q := NewQueue[int](seeded(3))
	q.StartRound(pool)
	q.Advance()
	q.Advance()
	require.Equal(t, 3, q.Seen())
	require.Empty(t, q.Remaining())

	q.Advance()
	assert.Equal(t, 1, q.Seen())
	assert.Len(t, q.Remaining(), 2)

	cur, _ := q.Current()
	cycle := append([]int{cur}, q.Remaining()...)
	assert.ElementsMatch(t, pool, cycle)
}

func TestAdvance_EmptyPool(t *testing.T) {
	q := NewQueue[int](seeded(1))
	q.StartRound(nil)
	q.Advance()

	_, ok := q.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Seen())
	assert.Empty(t, q.Remaining())
}

func TestReconcile(t *testing.T) {
	q := NewQueue[int](seeded(9))
	assert.True(t, q.Reconcile([]int{1, 2, 3, 4}))
	q.Advance()

	cur, _ := q.Current()
	rem := q.Remaining()
	seen := q.Seen()

	t.Run("same content keeps cycle", func(t *testing.T) {
		assert.False(t, q.Reconcile([]int{1, 2, 3, 4}))
		got, _ := q.Current()
		assert.Equal(t, cur, got)
		assert.Equal(t, rem, q.Remaining())
		assert.Equal(t, seen, q.Seen())
	})

	t.Run("changed content restarts", func(t *testing.T) {
		assert.True(t, q.Reconcile([]int{1, 2, 3}))
		assert.Equal(t, 1, q.Seen())
		assert.Len(t, q.Remaining(), 2)
	})

	t.Run("empty pool", func(t *testing.T) {
		assert.True(t, q.Reconcile(nil))
		_, ok := q.Current()
		assert.False(t, ok)
		assert.False(t, q.Reconcile([]int{}))
	})
}
