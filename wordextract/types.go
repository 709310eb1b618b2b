// Package wordextract discovers unknown multi-character words from
// PMI-scored n-grams via a four-stage generate/verify/filter/rank
// pipeline, the approach a language with no marked word boundaries
// (Japanese, Chinese, Thai, ...) needs in place of dictionary lookup.
package wordextract

// WordCandidate is a raw candidate emitted by the generator: an
// n-gram that cleared the minimum PMI score and length bound, not yet
// checked against the source text.
type WordCandidate struct {
	Text      string
	Score     float64
	Frequency int64
}

// VerifiedCandidate is a WordCandidate that has been checked against
// the original corpus and scored along secondary dimensions.
type VerifiedCandidate struct {
	Text             string
	Score            float64
	Frequency        int64
	Context          string
	ContextScore     float64
	StatisticalScore float64
}

// RankedCandidate is a VerifiedCandidate with its final combined
// score, the form returned to the caller.
type RankedCandidate struct {
	Text      string
	Score     float64
	Frequency int64
	Context   string
}

// Options configures the whole pipeline. Field groups mirror the four
// stages: generation, verification, filtering, ranking.
type Options struct {
	// Generation
	MinPMIScore        float64
	MaxCandidateLength int
	MaxCandidates       int

	// Verification
	VerifyInOriginalText   bool
	UseContextualAnalysis  bool
	UseStatisticalValidation bool
	UseDictionaryLookup    bool
	DictionaryPath         string
	ContextWindow          int

	// Filtering
	MinLength               int
	MaxLength               int
	MinScore                float64
	RemoveSubstrings        bool
	RemoveOverlapping       bool
	LanguageCode            string
	UseLanguageSpecificRules bool

	// Ranking
	TopK             int
	RankingModel     string
	PMIWeight        float64
	LengthWeight     float64
	ContextWeight    float64
	StatisticalWeight float64

	// Parallelism
	UseParallelProcessing bool
	Threads               int

	// Progress
	// ProgressStep is the minimum overall-ratio advance between
	// reported progress events, in (0, 1]. 0 selects the default
	// (progress.DefaultProgressStep).
	ProgressStep float64
}

// DefaultOptions returns the option set the original engine ships as
// its defaults, a sensible starting point for Japanese-style corpora.
func DefaultOptions() Options {
	return Options{
		MinPMIScore:        1.0,
		MaxCandidateLength: 20,
		MaxCandidates:      100000,

		VerifyInOriginalText:     true,
		UseContextualAnalysis:    true,
		UseStatisticalValidation: true,
		ContextWindow:            20,

		MinLength:                2,
		MaxLength:                20,
		MinScore:                 0.5,
		RemoveSubstrings:         true,
		RemoveOverlapping:        true,
		LanguageCode:             "ja",
		UseLanguageSpecificRules: true,

		TopK:              1000,
		RankingModel:      "combined",
		PMIWeight:         0.4,
		LengthWeight:      0.2,
		ContextWeight:     0.2,
		StatisticalWeight: 0.2,

		UseParallelProcessing: true,
	}
}
