// Package sampling provides deterministic reservoir sampling, used to
// cap the number of lines read from a very large corpus while still
// giving every line an equal chance of being retained.
package sampling

import (
	"math/rand"
	"time"
)

// Reservoir implements Algorithm R (Knuth, TAOCP vol 2): given a
// stream of unknown or expensive-to-know length, it retains a uniform
// random sample of size k using O(k) memory and a single pass.
type Reservoir[T any] struct {
	k     int
	items []T
	seen  int
	rng   *rand.Rand
}

// NewReservoir returns a Reservoir retaining at most k items. A
// nonzero seed makes sampling reproducible: the same seed and the same
// input order always produce the same retained set. seed == 0 selects
// a time-derived seed instead, so repeated unseeded runs sample
// differently.
func NewReservoir[T any](k int, seed int64) *Reservoir[T] {
	if k < 0 {
		k = 0
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Reservoir[T]{
		k:     k,
		items: make([]T, 0, k),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Offer presents the next item in the stream to the reservoir. The
// first k items offered are always retained; after that, item i (0
// indexed, i >= k) replaces a uniformly random existing slot with
// probability k/(i+1), the textbook Algorithm R guarantee of a uniform
// sample over the full stream seen so far.
func (r *Reservoir[T]) Offer(item T) {
	if r.k == 0 {
		r.seen++
		return
	}

	if len(r.items) < r.k {
		r.items = append(r.items, item)
		r.seen++
		return
	}

	j := r.rng.Intn(r.seen + 1)
	if j < r.k {
		r.items[j] = item
	}
	r.seen++
}

// Sample returns the items currently retained, in reservoir slot
// order: once replacements have happened this is neither input order
// nor the order in which items were placed.
func (r *Reservoir[T]) Sample() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Seen returns the total number of items offered so far.
func (r *Reservoir[T]) Seen() int {
	return r.seen
}
