// Package pmi scores code-point n-grams by pointwise mutual
// information: how much more (or less) often an n-gram occurs than
// its components would if they were independent. High-PMI n-grams are
// the statistically "sticky" substrings that make good word-extraction
// candidates.
package pmi

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/libraz/suzume-feedmill/errs"
	"github.com/libraz/suzume-feedmill/logging"
	"github.com/libraz/suzume-feedmill/ngram"
	"github.com/libraz/suzume-feedmill/parallel"
	"github.com/libraz/suzume-feedmill/progress"
	"github.com/libraz/suzume-feedmill/unicodeutil"
)

// Options configures a PMI run.
type Options struct {
	// N is the n-gram size to score. N == 1 degenerates to raw
	// frequency ranking (mutual information of a single symbol with
	// itself is undefined, so the PMI term is simply skipped).
	N int
	// TopK limits the output to the K highest-scoring n-grams. 0 means
	// no limit.
	TopK int
	// MinFrequency discards n-grams occurring fewer than this many
	// times before scoring. 0 means no floor.
	MinFrequency int64
	Parallel     parallel.Options
	Verbose      bool
	// ProgressStep is the minimum overall-ratio advance between
	// reported progress events, in (0, 1]. 0 selects the default
	// (progress.DefaultProgressStep).
	ProgressStep float64
}

func (o Options) withDefaults() Options {
	if o.N <= 0 {
		o.N = 2
	}
	return o
}

// Score is one scored n-gram.
type Score struct {
	Ngram     string
	PMI       float64
	Frequency int64
}

// Result is the outcome of a complete PMI run.
type Result struct {
	Scores    []Score
	Rows      int
	ElapsedMs float64
	MBPerSec  float64
}

// Calculate scores every n-gram of size opts.N found in lines, sorted
// by descending PMI (ties broken by descending frequency, then
// lexically for full determinism).
func Calculate(ctx context.Context, lines []string, opts Options, tracker *progress.Tracker, logger logging.Logger) (Result, error) {
	opts = opts.withDefaults()
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.ProgressStep < 0 || opts.ProgressStep > 1 {
		return Result{}, errs.Invalid("pmi.Calculate", "progressStep must be in (0, 1]")
	}
	if tracker == nil {
		tracker = progress.NewTrackerWithStep(nil, opts.ProgressStep)
	}

	if opts.Verbose {
		logger.Debug("pmi: starting run",
			logging.Int("n", opts.N),
			logging.Int("topK", opts.TopK),
			logging.Int("minFrequency", int(opts.MinFrequency)),
			logging.Int("threads", opts.Parallel.Workers),
		)
	}

	start := time.Now()
	var inputBytes int64
	for _, l := range lines {
		inputBytes += int64(len(l))
	}

	tracker.Update(progress.Reading, 1.0, "")

	joint, err := ngram.Count(ctx, lines, opts.N, opts.Parallel)
	if err != nil {
		return Result{}, errs.New("pmi.Calculate", errs.Internal, "", err)
	}
	tracker.Update(progress.Processing, 1.0, "")

	// Both P(joint) and every marginal P(component) share the single
	// total = Σ counts over the n-gram map being scored — the
	// marginals are accumulated from that same map's code-point
	// decomposition, not from an independently counted unigram corpus.
	jointTotal := joint.Total()
	var componentCounts ngram.Counts
	if opts.N > 1 {
		componentCounts = make(ngram.Counts, len(joint))
		for g, freq := range joint {
			for _, comp := range unicodeutil.Decompose(g) {
				componentCounts[comp] += freq
			}
		}
	}

	scores := make([]Score, 0, len(joint))
	i := 0
	for g, freq := range joint {
		i++
		if i%2048 == 0 {
			tracker.Update(progress.Calculating, float64(i)/float64(len(joint)), "")
		}
		if freq < opts.MinFrequency {
			continue
		}

		if opts.N == 1 {
			scores = append(scores, Score{Ngram: g, PMI: float64(freq), Frequency: freq})
			continue
		}

		score, ok := score(g, freq, jointTotal, componentCounts)
		if !ok {
			continue
		}
		scores = append(scores, Score{Ngram: g, PMI: score, Frequency: freq})
	}
	tracker.Update(progress.Calculating, 1.0, "")

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].PMI != scores[j].PMI {
			return scores[i].PMI > scores[j].PMI
		}
		if scores[i].Frequency != scores[j].Frequency {
			return scores[i].Frequency > scores[j].Frequency
		}
		return scores[i].Ngram < scores[j].Ngram
	})

	if opts.TopK > 0 && len(scores) > opts.TopK {
		scores = scores[:opts.TopK]
	}

	tracker.Update(progress.Writing, 1.0, "")

	elapsed := time.Since(start).Seconds() * 1000
	mb := float64(inputBytes) / (1024 * 1024)
	var mbPerSec float64
	if elapsed > 0 {
		mbPerSec = mb / (elapsed / 1000)
	}

	tracker.Done("")

	return Result{
		Scores:    scores,
		Rows:      len(scores),
		ElapsedMs: elapsed,
		MBPerSec:  mbPerSec,
	}, nil
}

// score computes the PMI of a single n-gram: log2(P(ngram) /
// product(P(component) for each component)), where P(joint) and every
// P(component) are taken over the same total (the sum of counts in
// the n-gram map being scored). An n-gram with any zero-frequency
// component (cannot occur by construction, since componentCounts is
// built from this same map, but is guarded against divide-by-zero/
// log(0) regardless) is skipped rather than scored.
func score(g string, freq, total int64, componentCounts ngram.Counts) (float64, bool) {
	if total == 0 {
		return 0, false
	}

	pJoint := float64(freq) / float64(total)

	denom := 1.0
	for _, comp := range unicodeutil.Decompose(g) {
		cf := componentCounts[comp]
		if cf == 0 {
			return 0, false
		}
		denom *= float64(cf) / float64(total)
	}
	if denom <= 0 {
		return 0, false
	}

	return math.Log2(pJoint / denom), true
}

// WriteTSV writes scores as a TSV file with a header row, matching the
// original engine's PMI output format.
func WriteTSV(w io.Writer, scores []Score) error {
	if _, err := io.WriteString(w, "ngram\tpmi\tfrequency\n"); err != nil {
		return err
	}
	for _, s := range scores {
		if _, err := fmt.Fprintf(w, "%s\t%f\t%d\n", s.Ngram, s.PMI, s.Frequency); err != nil {
			return err
		}
	}
	return nil
}
