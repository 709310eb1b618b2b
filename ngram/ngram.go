// Package ngram counts code-point n-gram frequencies over a corpus,
// the shared input both the PMI scorer and the word-extraction
// candidate generator build on.
package ngram

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/libraz/suzume-feedmill/parallel"
	"github.com/libraz/suzume-feedmill/unicodeutil"
)

// Counts maps an n-gram to how many times it occurred.
type Counts map[string]int64

// Count returns the frequency of every size-n code-point window
// across lines, never crossing a line boundary (matching
// unicodeutil.GenerateNgrams). lines are rejoined into the full
// corpus text and partitioned into byte-range, line-aligned chunks via
// parallel.SplitLines — the counter is invoked over the full
// concatenated corpus, the same partitioning the PMI stage needs.
// Each chunk is counted independently and the partial maps merged by
// summation, so callers with very large corpora still get a single
// combined map regardless of how work was split.
func Count(ctx context.Context, lines []string, n int, opts parallel.Options) (Counts, error) {
	if n <= 0 || len(lines) == 0 {
		return Counts{}, nil
	}

	text := strings.Join(lines, "\n")
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunks := parallel.SplitLines(text, workers)

	var mu sync.Mutex
	total := make(Counts)

	err := parallel.ForEach(ctx, chunks, opts, func(_ context.Context, chunk parallel.Chunk) error {
		local := make(Counts)
		for _, line := range strings.Split(chunk.Text, "\n") {
			for _, g := range unicodeutil.GenerateNgrams(line, n) {
				local[g]++
			}
		}
		if len(local) == 0 {
			return nil
		}
		mu.Lock()
		for g, c := range local {
			total[g] += c
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return total, nil
}

// Total returns the sum of all frequencies in c, i.e. the total number
// of n-gram occurrences counted (not the number of distinct n-grams).
func (c Counts) Total() int64 {
	var sum int64
	for _, v := range c {
		sum += v
	}
	return sum
}
