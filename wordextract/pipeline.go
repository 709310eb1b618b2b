package wordextract

import (
	"bufio"
	"context"
	"os"

	"github.com/libraz/suzume-feedmill/errs"
	"github.com/libraz/suzume-feedmill/logging"
	"github.com/libraz/suzume-feedmill/pmi"
	"github.com/libraz/suzume-feedmill/progress"
)

// Result is the outcome of Run.
type Result struct {
	Candidates []RankedCandidate
	ElapsedMs  float64
}

// Run executes the full generate/verify/filter/rank pipeline over
// scores (the output of pmi.Calculate) against originalText, the
// source corpus the candidates are checked against.
func Run(ctx context.Context, scores []pmi.Score, originalText string, opts Options, tracker *progress.Tracker, logger logging.Logger) (Result, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.ProgressStep < 0 || opts.ProgressStep > 1 {
		return Result{}, errs.Invalid("wordextract.Run", "progressStep must be in (0, 1]")
	}
	if tracker == nil {
		tracker = progress.NewTrackerWithStep(nil, opts.ProgressStep)
	}

	tracker.Update(progress.Reading, 1.0, "")

	candidates, _, _, err := generateCandidates(ctx, scores, opts)
	if err != nil {
		return Result{}, err
	}
	reportGenerationProgress(tracker, 1.0)

	var dictionary map[string]struct{}
	if opts.UseDictionaryLookup && opts.DictionaryPath != "" {
		dictionary, err = loadDictionary(opts.DictionaryPath)
		if err != nil {
			return Result{}, err
		}
	}

	idx := newTextIndex(originalText)
	verified := verifyCandidates(candidates, idx, dictionary, opts)
	tracker.Update(progress.Processing, 1.0, "")

	filtered := filterCandidates(verified, opts)
	tracker.Update(progress.Calculating, 0.5, "")

	ranked := rankCandidates(filtered, opts)
	if opts.TopK > 0 && len(ranked) > opts.TopK {
		ranked = ranked[:opts.TopK]
	}
	tracker.Update(progress.Calculating, 1.0, "")

	tracker.Update(progress.Writing, 1.0, "")
	tracker.Done("")

	return Result{Candidates: ranked}, nil
}

// RunFromFile reads PMI scores from pmiResultsPath (the TSV format
// produced by pmi.WriteTSV) via ReadPMIResults, then runs the full
// generate/verify/filter/rank pipeline over them — the file-based
// entry point for callers that persist the PMI stage's output between
// runs instead of piping pmi.Calculate's result straight through.
func RunFromFile(ctx context.Context, pmiResultsPath, originalText string, opts Options, tracker *progress.Tracker, logger logging.Logger) (Result, error) {
	scores, err := ReadPMIResults(pmiResultsPath, logger)
	if err != nil {
		return Result{}, err
	}
	return Run(ctx, scores, originalText, opts, tracker, logger)
}

// loadDictionary reads a newline-delimited word list used by the
// verifier to drop already-known words.
func loadDictionary(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.New("wordextract.loadDictionary", errs.NotFound, path, err)
		}
		return nil, errs.NewIO("wordextract.loadDictionary", errs.Generic, path, err)
	}
	defer f.Close()

	dict := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		dict[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.NewIO("wordextract.loadDictionary", errs.Generic, path, err)
	}
	return dict, nil
}
