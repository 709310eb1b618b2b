// Package dedup provides an exact-duplicate oracle accelerated by a
// probabilistic pre-filter. Two lines are duplicates when their
// normalized form is byte-identical; the bloom filter only ever
// shortcuts the "definitely new" case, so it never produces a false
// negative.
package dedup

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/libraz/suzume-feedmill/unicodeutil"
)

// DefaultFalsePositiveRate bounds how often the bloom filter sends a
// genuinely new line down the slow exact-lookup path unnecessarily. It
// never causes a duplicate to be missed, only a rare extra map probe.
const DefaultFalsePositiveRate = 0.01

// Oracle tracks every normalized line seen so far and reports whether
// a new one is a duplicate. Safe for concurrent use; callers that need
// to dedup a batch of N lines in parallel and preserve first-seen
// order should still serialize the Seen calls, since "first" is only
// meaningful under a single ordering.
type Oracle struct {
	mu     sync.Mutex
	filter *bloom.BloomFilter
	seen   map[string]struct{}
	count  uint
}

// New returns an Oracle sized for approximately expectedN distinct
// lines, with the bloom pre-filter tuned to falsePositiveRate (<= 0
// selects DefaultFalsePositiveRate). expectedN is a sizing hint, not a
// hard cap: the oracle stays correct (just with a slightly higher
// false-positive rate feeding the slow path) however many lines it
// actually sees.
func New(expectedN uint, falsePositiveRate float64) *Oracle {
	if expectedN == 0 {
		expectedN = 1024
	}
	if falsePositiveRate <= 0 {
		falsePositiveRate = DefaultFalsePositiveRate
	}
	return &Oracle{
		filter: bloom.NewWithEstimates(expectedN, falsePositiveRate),
		seen:   make(map[string]struct{}, expectedN),
	}
}

// Seen reports whether line (already normalized) has been observed
// before, and records it as seen if not. The first call for any given
// line returns false; every subsequent call with the same line returns
// true. The exact decision always rests on the seen set keyed by the
// full line; the bloom filter (keyed by a cheap hash) only decides
// whether that exact lookup is worth doing.
func (o *Oracle) Seen(line string) bool {
	h := unicodeutil.Hash(line)
	key := [8]byte{
		byte(h), byte(h >> 8), byte(h >> 16), byte(h >> 24),
		byte(h >> 32), byte(h >> 40), byte(h >> 48), byte(h >> 56),
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.filter.Test(key[:]) {
		o.filter.Add(key[:])
		o.seen[line] = struct{}{}
		o.count++
		return false
	}

	if _, ok := o.seen[line]; ok {
		return true
	}
	o.seen[line] = struct{}{}
	o.count++
	return false
}

// Count returns the number of distinct lines recorded so far.
func (o *Oracle) Count() uint {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.count
}
