package wordextract

import (
	"math"
	"sort"
	"unicode/utf8"
)

// optimalCandidateLength is the character count the length score
// peaks at; candidates shorter or longer are penalized by a Gaussian
// falloff.
const optimalCandidateLength = 4.0

// rankCandidates computes each candidate's final combined score and
// returns them sorted by descending score.
func rankCandidates(candidates []VerifiedCandidate, opts Options) []RankedCandidate {
	out := make([]RankedCandidate, len(candidates))
	for i, c := range candidates {
		out[i] = RankedCandidate{
			Text:      c.Text,
			Score:     calculateCombinedScore(c, opts),
			Frequency: c.Frequency,
			Context:   c.Context,
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Text < out[j].Text
	})
	return out
}

func calculateCombinedScore(c VerifiedCandidate, opts Options) float64 {
	if opts.RankingModel != "combined" {
		return c.Score
	}

	pmiScore := math.Min(1.0, c.Score/10.0)
	lengthScore := lengthScore(c.Text)
	contextScore := c.ContextScore
	statisticalScore := c.StatisticalScore

	return opts.PMIWeight*pmiScore +
		opts.LengthWeight*lengthScore +
		opts.ContextWeight*contextScore +
		opts.StatisticalWeight*statisticalScore
}

func lengthScore(text string) float64 {
	length := float64(utf8.RuneCountInString(text))
	diff := length - optimalCandidateLength
	return math.Exp(-(diff * diff) / 8.0)
}
