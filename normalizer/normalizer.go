// Package normalizer implements the corpus cleaning pipeline:
// line-admission filtering on the raw bytes, then Unicode
// normalization, control/format stripping, optional case folding, and
// exact deduplication, in that order,
// with deterministic first-occurrence-wins output ordering.
package normalizer

import (
	"context"
	"time"

	"github.com/libraz/suzume-feedmill/dedup"
	"github.com/libraz/suzume-feedmill/errs"
	"github.com/libraz/suzume-feedmill/linefilter"
	"github.com/libraz/suzume-feedmill/logging"
	"github.com/libraz/suzume-feedmill/parallel"
	"github.com/libraz/suzume-feedmill/progress"
	"github.com/libraz/suzume-feedmill/unicodeutil"
)

// Options configures a normalization run.
type Options struct {
	Form       unicodeutil.Form
	FoldCase   bool
	LineFilter linefilter.Options
	Parallel   parallel.Options

	// BloomFalsePositiveRate tunes the dedup oracle's probabilistic
	// fast path, in (0, 0.1]. 0 selects the default (0.01).
	BloomFalsePositiveRate float64
	// ProgressStep is the minimum overall-ratio advance between
	// reported progress events, in (0, 1]. 0 selects the default
	// (0.05).
	ProgressStep float64
}

// Stats summarizes one normalization run.
type Stats struct {
	Rows       int
	Uniques    int
	Duplicates int
	ElapsedMs  float64
	MBPerSec   float64
}

// Result is the outcome of Run: the surviving, deduplicated lines in
// first-seen order, plus run statistics.
type Result struct {
	Lines []string
	Stats Stats
}

// Run normalizes, filters, and deduplicates lines. Normalization
// itself (the CPU-bound Unicode work) is spread across opts.Parallel
// workers; filtering and deduplication are applied sequentially, in
// input order, so the result is deterministic and independent of
// however many workers normalized it.
func Run(ctx context.Context, lines []string, opts Options, tracker *progress.Tracker, logger logging.Logger) (Result, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	bloomRate := opts.BloomFalsePositiveRate
	if bloomRate < 0 || bloomRate > 0.1 {
		return Result{}, errs.Invalid("normalizer.Run", "bloomFalsePositiveRate must be in (0, 0.1]")
	}
	progressStep := opts.ProgressStep
	if progressStep < 0 || progressStep > 1 {
		return Result{}, errs.Invalid("normalizer.Run", "progressStep must be in (0, 1]")
	}

	if tracker == nil {
		tracker = progress.NewTrackerWithStep(nil, progressStep)
	}

	start := time.Now()
	var inputBytes int64
	for _, l := range lines {
		inputBytes += int64(len(l))
	}

	tracker.Update(progress.Reading, 1.0, "")

	// Line admission runs on the raw, pre-normalization bytes: the
	// filter's length bounds are defined in terms of raw byte length.
	survivors := make([]string, 0, len(lines))
	for _, line := range lines {
		tabPresent := containsTab(line)
		if linefilter.ShouldExclude(line, opts.LineFilter, tabPresent) {
			continue
		}
		survivors = append(survivors, line)
	}

	normalized, err := parallel.Map(ctx, survivors, opts.Parallel, func(_ context.Context, line string) (string, error) {
		return normalizeLine(line, opts), nil
	})
	if err != nil {
		return Result{}, errs.New("normalizer.Run", errs.Internal, "", err)
	}
	tracker.Update(progress.Processing, 1.0, "")

	oracle := dedup.New(uint(len(normalized)), bloomRate)
	out := make([]string, 0, len(normalized))
	duplicates := 0

	for i, line := range normalized {
		if oracle.Seen(line) {
			duplicates++
			continue
		}
		out = append(out, line)

		if len(normalized) > 0 {
			tracker.Update(progress.Calculating, float64(i+1)/float64(len(normalized)), "")
		}
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
		Lines: out,
		Stats: Stats{
			Rows:       len(lines),
			Uniques:    len(out),
			Duplicates: duplicates,
			ElapsedMs:  elapsed,
			MBPerSec:   mbPerSec,
		},
	}, nil
}

func normalizeLine(line string, opts Options) string {
	line = unicodeutil.Normalize(line, opts.Form)
	line = unicodeutil.StripControlFormat(line)
	if opts.FoldCase && !unicodeutil.ContainsDigit(line) {
		line = unicodeutil.FoldCase(line)
	}
	return line
}

func containsTab(s string) bool {
	for _, r := range s {
		if r == '\t' {
			return true
		}
	}
	return false
}
