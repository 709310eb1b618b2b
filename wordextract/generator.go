package wordextract

import (
	"context"
	"sort"
	"sync"

	"github.com/libraz/suzume-feedmill/errs"
	"github.com/libraz/suzume-feedmill/parallel"
	"github.com/libraz/suzume-feedmill/pmi"
	"github.com/libraz/suzume-feedmill/progress"
)

// parallelGenerationThreshold is the n-gram count above which
// candidate generation is worth spreading across workers; below it
// the scheduling overhead isn't worth paying.
const parallelGenerationThreshold = 1000

// generateCandidates converts PMI scores into WordCandidates: scores
// are first floored by MinPMIScore (the caller is expected to have
// already produced scores, analogous to the original's readPmiResults
// filtering at read time), then any n-gram no longer than
// MaxCandidateLength becomes a candidate. Also builds forward and
// backward tries over the qualifying n-grams and returns them; Run
// does not use them.
func generateCandidates(ctx context.Context, scores []pmi.Score, opts Options) ([]WordCandidate, *ngramTrie, *ngramTrie, error) {
	qualifying := make([]pmi.Score, 0, len(scores))
	for _, s := range scores {
		if s.PMI >= opts.MinPMIScore {
			qualifying = append(qualifying, s)
		}
	}

	forward := newNgramTrie()
	backward := newNgramTrie()
	for _, s := range qualifying {
		forward.Add(s.Ngram, s.PMI, s.Frequency)
		backward.Add(reverseString(s.Ngram), s.PMI, s.Frequency)
	}

	var candidates []WordCandidate
	buildOne := func(s pmi.Score) (WordCandidate, bool) {
		if len([]rune(s.Ngram)) > opts.MaxCandidateLength {
			return WordCandidate{}, false
		}
		return WordCandidate{Text: s.Ngram, Score: s.PMI, Frequency: s.Frequency}, true
	}

	useParallel := opts.UseParallelProcessing && opts.Threads != 1 && len(qualifying) >= parallelGenerationThreshold
	if useParallel {
		var mu sync.Mutex
		err := parallel.ForEach(ctx, qualifying, parallel.Options{Workers: opts.Threads}, func(_ context.Context, s pmi.Score) error {
			c, ok := buildOne(s)
			if !ok {
				return nil
			}
			mu.Lock()
			candidates = append(candidates, c)
			mu.Unlock()
			return nil
		})
		if err != nil {
			return nil, nil, nil, errs.New("wordextract.generateCandidates", errs.Internal, "", err)
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].Text < candidates[j].Text })
	} else {
		for _, s := range qualifying {
			if c, ok := buildOne(s); ok {
				candidates = append(candidates, c)
			}
		}
	}

	if opts.MaxCandidates > 0 && len(candidates) > opts.MaxCandidates {
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })
		candidates = candidates[:opts.MaxCandidates]
	}

	return candidates, forward, backward, nil
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// reportGenerationProgress is a small helper kept separate so the
// caller (pipeline.go) can report a single phase-relative ratio
// without generateCandidates itself needing a *progress.Tracker
// threaded through every branch above.
func reportGenerationProgress(tracker *progress.Tracker, ratio float64) {
	if tracker != nil {
		tracker.Update(progress.Processing, ratio, "")
	}
}
