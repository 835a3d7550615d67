// Package deck produces shuffled presentation orders and cycles through them
// without repeats.
package deck

// Rand is the random source used for shuffling. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Shuffle returns a uniformly random permutation of items using
// Fisher-Yates. The input slice is not modified.
func Shuffle[T any](rng Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
