// Package linefilter decides whether a line should be dropped before
// normalization and deduplication: empty or whitespace-only lines,
// single-code-point lines, emoji-only lines, and lines outside a
// configured byte-length range.
// Running before normalization means raw bytes define "length".
package linefilter

import "github.com/libraz/suzume-feedmill/unicodeutil"

// Options bounds the accepted line length in bytes. A zero value for
// either bound means "no bound" (MinLength 0 means no lower bound
// beyond the always-applied empty/single-code-point check; MaxLength 0 means
// no upper bound).
type Options struct {
	MinLength int
	MaxLength int
}

// ShouldExclude reports whether line should be dropped. tabPresent
// tells the emoji check whether line already contains a tab-separated
// second field (an emoji-only first field alongside real data is not
// excluded, matching the original engine's "only check emoji-only when
// there is no tab" rule).
func ShouldExclude(line string, opts Options, tabPresent bool) bool {
	if unicodeutil.IsWhitespaceOnly(line) {
		return true
	}

	length := len(line)
	if unicodeutil.RuneCount(line) <= 1 {
		return true
	}

	if !tabPresent && unicodeutil.IsEmojiOnly(line) {
		return true
	}

	if opts.MinLength > 0 && length < opts.MinLength {
		return true
	}
	if opts.MaxLength > 0 && length > opts.MaxLength {
		return true
	}

	return false
}
