package wordextract

import "math"

// verifyCandidates checks each candidate against the original corpus
// and attaches secondary scores (context, statistical). Candidates
// that fail a required check (not present in text, or already in the
// dictionary) are dropped rather than down-weighted.
func verifyCandidates(candidates []WordCandidate, idx *textIndex, dictionary map[string]struct{}, opts Options) []VerifiedCandidate {
	out := make([]VerifiedCandidate, 0, len(candidates))

	for _, c := range candidates {
		if opts.VerifyInOriginalText && !idx.Contains(c.Text) {
			continue
		}

		var context string
		var contextScore float64
		if opts.UseContextualAnalysis {
			context, contextScore = analyzeContext(c, idx, opts.ContextWindow)
		}

		var statScore float64
		if opts.UseStatisticalValidation {
			statScore = validateStatistically(c, idx)
		}

		if opts.UseDictionaryLookup && len(dictionary) > 0 {
			if _, known := dictionary[c.Text]; known {
				continue
			}
		}

		out = append(out, VerifiedCandidate{
			Text:             c.Text,
			Score:            c.Score,
			Frequency:        c.Frequency,
			Context:          context,
			ContextScore:     contextScore,
			StatisticalScore: statScore,
		})
	}

	return out
}

// analyzeContext returns the context window around the candidate's
// first occurrence, and a score in [0, 1] that grows with how many
// times the candidate recurs (capped at 10 occurrences).
func analyzeContext(c WordCandidate, idx *textIndex, window int) (string, float64) {
	positions := idx.FindAll(c.Text)
	if len(positions) == 0 {
		return "", 0
	}
	if window <= 0 {
		window = 20
	}
	context := idx.GetContext(positions[0], window)
	score := math.Min(1.0, float64(len(positions))/10.0)
	return context, score
}

// validateStatistically scores a candidate from its raw frequency, a
// length bonus (growing up to 4 characters, flat after), and a bonus for
// recurring in multiple contexts, all capped at 1.0.
func validateStatistically(c WordCandidate, idx *textIndex) float64 {
	if c.Frequency == 0 {
		return 0
	}

	frequencyScore := math.Min(1.0, float64(c.Frequency)/20.0)

	charCount := len([]rune(c.Text))
	lengthBonus := 1.0 + math.Min(0.3, float64(charCount-1)*0.1)

	score := frequencyScore * lengthBonus

	positions := idx.FindAll(c.Text)
	if len(positions) > 1 {
		diversityBonus := 1.0 + math.Min(0.2, float64(len(positions)-1)*0.05)
		score *= diversityBonus
	}

	return math.Min(1.0, score)
}
