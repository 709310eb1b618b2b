// Package unicodeutil provides the Unicode-aware primitives shared by
// the rest of feedmill: NFC/NFKC normalization, code-point iteration,
// n-gram generation, emoji-only detection, and a fast non-cryptographic
// hash used for membership acceleration.
//
// All functions are safe for concurrent use by multiple goroutines;
// none hold mutable package-level state after init.
package unicodeutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Form selects the Unicode normalization form applied to a line's
// fields.
type Form int

const (
	// FormCanonical composes characters without folding compatibility
	// variants (NFC).
	FormCanonical Form = iota
	// FormCompatibility additionally folds compatibility equivalents,
	// e.g. full-width Latin to ASCII (NFKC).
	FormCompatibility
)

var foldCaser = cases.Fold()

// Normalize applies the given Unicode normalization form to s.
// Malformed UTF-8 is replaced with U+FFFD by the underlying
// normalizer rather than rejected; this function never fails.
func Normalize(s string, form Form) string {
	if form == FormCompatibility {
		return norm.NFKC.String(s)
	}
	return norm.NFC.String(s)
}

// StripControlFormat removes code points in Unicode general
// categories Control (Cc) and Format (Cf). This is always safe: it
// never changes the meaning of the visible text, only removes
// characters with no visible representation.
func StripControlFormat(s string) string {
	hasControl := false
	for _, r := range s {
		if unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cf, r) {
			hasControl = true
			break
		}
	}
	if !hasControl {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cf, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsDigit reports whether s contains any decimal digit code
// point, used to decide whether case folding is safe to apply (spec:
// fields containing digits are never case-folded, to avoid corrupting
// things like version numbers or serials).
func ContainsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// FoldCase returns s with full locale-agnostic Unicode case folding
// applied, via golang.org/x/text/cases. A fresh Caser is built on each
// call, since a Caser may keep state and is not shared between
// goroutines. The normalizer applies it when its FoldCase option is
// set, and only to lines with no digits.
func FoldCase(s string) string {
	return cases.Fold().String(s)
}

// RuneCount returns the number of Unicode code points in s. A thin
// name for utf8.RuneCountInString kept so call sites read in terms of
// code points rather than bytes.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// IsWhitespaceOnly reports whether s has no non-whitespace code
// points. An empty string is considered whitespace-only.
func IsWhitespaceOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Hash returns a fast non-cryptographic 64-bit hash of the UTF-8 bytes
// of s, used only for membership acceleration (dedup seen-sets, trie
// diagnostics) — never for security-sensitive purposes.
func Hash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// GenerateNgrams produces every contiguous code-point window of size n
// in text. Windows never cross a line boundary (U+000A); a multi-line
// text is treated as the concatenation of each line's own n-grams. If
// a line has fewer than n code points, it contributes nothing. Returns
// nil for n <= 0 or empty text.
func GenerateNgrams(text string, n int) []string {
	if n <= 0 || text == "" {
		return nil
	}

	var out []string
	for _, line := range splitLines(text) {
		out = append(out, ngramsWithinLine(line, n)...)
	}
	return out
}

// splitLines splits text on U+000A without discarding empty segments,
// mirroring how line-oriented input is laid out on disk.
func splitLines(text string) []string {
	if !strings.Contains(text, "\n") {
		return []string{text}
	}
	return strings.Split(text, "\n")
}

// ngramsWithinLine generates n-grams from a single line (no U+000A
// inside), collecting its code points into a []rune so each window can
// be sliced out directly.
func ngramsWithinLine(line string, n int) []string {
	if line == "" {
		return nil
	}

	runes := make([]rune, 0, len(line))
	for _, r := range line {
		runes = append(runes, r)
	}
	if len(runes) < n {
		return nil
	}

	out := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		out = append(out, string(runes[i:i+n]))
	}
	return out
}

// Decompose returns the n code points of an n-gram as individual
// single-code-point strings (its "unigram components"), used by the
// PMI scorer to look up each component's marginal frequency.
func Decompose(ngram string) []string {
	if ngram == "" {
		return nil
	}
	out := make([]string, 0, len(ngram))
	for _, r := range ngram {
		out = append(out, string(r))
	}
	return out
}

// ValidUTF8 reports whether s is well-formed UTF-8.
func ValidUTF8(s string) bool {
	return utf8.ValidString(s)
}
