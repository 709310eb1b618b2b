package wordextract

import (
	"sort"
	"strings"

	"github.com/libraz/suzume-feedmill/unicodeutil"
)

// filterCandidates applies, in order: length bound, score floor,
// substring removal, overlap removal, and a permissive
// language-agnostic noise check. Each stage only narrows the set the
// next stage sees.
func filterCandidates(candidates []VerifiedCandidate, opts Options) []VerifiedCandidate {
	out := make([]VerifiedCandidate, 0, len(candidates))
	for _, c := range candidates {
		n := len([]rune(c.Text))
		if n >= opts.MinLength && n <= opts.MaxLength {
			out = append(out, c)
		}
	}

	scored := out[:0:0]
	for _, c := range out {
		if c.Score >= opts.MinScore {
			scored = append(scored, c)
		}
	}
	out = scored

	if opts.RemoveSubstrings {
		out = removeSubstringCandidates(out)
	}
	if opts.RemoveOverlapping {
		out = removeOverlappingCandidates(out)
	}
	if opts.UseLanguageSpecificRules {
		out = applyLanguageSpecificFilters(out)
	}

	return out
}

// removeSubstringCandidates drops a candidate when it is a substring
// of some longer surviving candidate and its score is well below that
// longer candidate's (at or below 80%, equivalently the longer candidate
// scores at least 1.25x as much) — a strong match is kept even as a
// substring, since it may be a word in its own right.
func removeSubstringCandidates(candidates []VerifiedCandidate) []VerifiedCandidate {
	sorted := append([]VerifiedCandidate(nil), candidates...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i].Text) > len(sorted[j].Text) })

	byLength := map[int][]VerifiedCandidate{}
	for _, c := range sorted {
		byLength[len(c.Text)] = append(byLength[len(c.Text)], c)
	}

	toRemove := map[string]bool{}
	for _, c := range sorted {
		if toRemove[c.Text] {
			continue
		}
		for length, group := range byLength {
			if length <= len(c.Text) {
				continue
			}
			removed := false
			for _, longer := range group {
				if toRemove[longer.Text] {
					continue
				}
				if strings.Contains(longer.Text, c.Text) && c.Score <= longer.Score*0.8 {
					toRemove[c.Text] = true
					removed = true
					break
				}
			}
			if removed {
				break
			}
		}
	}

	out := make([]VerifiedCandidate, 0, len(candidates))
	for _, c := range candidates {
		if !toRemove[c.Text] {
			out = append(out, c)
		}
	}
	return out
}

// removeOverlappingCandidates keeps the highest-scoring candidate
// among any set of exact duplicates or substring/superstring pairs.
func removeOverlappingCandidates(candidates []VerifiedCandidate) []VerifiedCandidate {
	if len(candidates) == 0 {
		return candidates
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return candidates[order[i]].Score > candidates[order[j]].Score })

	removed := make([]bool, len(candidates))
	var result []VerifiedCandidate

	for _, i := range order {
		if removed[i] {
			continue
		}
		current := candidates[i]
		keep := true

		for _, j := range order {
			if i == j || removed[j] {
				continue
			}
			other := candidates[j]
			if !isOverlapping(current.Text, other.Text) {
				continue
			}
			if current.Score <= other.Score {
				keep = false
				break
			}
			removed[j] = true
		}

		if keep {
			result = append(result, current)
		} else {
			removed[i] = true
		}
	}

	return result
}

func isOverlapping(a, b string) bool {
	if a == b {
		return true
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// applyLanguageSpecificFilters is intentionally permissive: new-word
// discovery must not re-impose dictionary-style rules, so it only
// drops candidates that are unambiguous noise (empty, invalid UTF-8,
// or a single ASCII punctuation character).
func applyLanguageSpecificFilters(candidates []VerifiedCandidate) []VerifiedCandidate {
	out := make([]VerifiedCandidate, 0, len(candidates))
	for _, c := range candidates {
		if isLikelyValidWordCandidate(c.Text) {
			out = append(out, c)
		}
	}
	return out
}

func isLikelyValidWordCandidate(text string) bool {
	if text == "" {
		return false
	}
	if !unicodeutil.ValidUTF8(text) {
		return false
	}

	// A single-byte candidate is a lone ASCII character; anything
	// outside alphanumerics is noise (punctuation, symbols). A
	// single multi-byte code point (e.g. one CJK character) never
	// hits this branch and is always allowed through.
	if len(text) == 1 {
		c := text[0]
		if c < 0x30 || (c > 0x39 && c < 0x41) || (c > 0x5A && c < 0x61) || c > 0x7A {
			return false
		}
	}

	return true
}
