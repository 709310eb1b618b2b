package unicodeutil

import "unicode"

// codePointRange is an inclusive [Lo, Hi] range of code points.
type codePointRange struct {
	lo, hi rune
}

// emojiRanges lists the well-known emoji code point blocks, mirroring
// the ICU-free fallback table used by the original engine this package
// reimplements (g_emojiRanges): Go's standard library has no "Emoji"
// binary property table (that is an ICU/Unicode UCD annex concept
// neither unicode nor golang.org/x/text expose), so these ranges stand
// in for it directly.
var emojiRanges = []codePointRange{
	{0x1F000, 0x1F02F}, // Mahjong Tiles
	{0x1F030, 0x1F09F}, // Domino Tiles
	{0x1F0A0, 0x1F0FF}, // Playing Cards
	{0x1F100, 0x1F1FF}, // Enclosed Alphanumeric Supplement
	{0x1F200, 0x1F2FF}, // Enclosed Ideographic Supplement
	{0x1F300, 0x1F5FF}, // Misc Symbols and Pictographs
	{0x1F600, 0x1F64F}, // Emoticons
	{0x1F650, 0x1F67F}, // Ornamental Dingbats
	{0x1F680, 0x1F6FF}, // Transport and Map Symbols
	{0x1F700, 0x1F77F}, // Alchemical Symbols
	{0x1F780, 0x1F7FF}, // Geometric Shapes Extended
	{0x1F800, 0x1F8FF}, // Supplemental Arrows-C
	{0x1F900, 0x1F9FF}, // Supplemental Symbols and Pictographs
	{0x1FA00, 0x1FA6F}, // Chess Symbols
	{0x1FA70, 0x1FAFF}, // Symbols and Pictographs Extended-A
	{0x2600, 0x26FF},   // Misc Symbols (sun, umbrella, etc.)
	{0x2700, 0x27BF},   // Dingbats
}

// emojiSpecials are the combining/format characters that only occur as
// part of an emoji sequence: zero-width joiner, emoji variation
// selector, and the combining enclosing keycap used by keycap emoji
// (1️⃣, 2️⃣, ...).
var emojiSpecials = map[rune]bool{
	0x200D: true, // Zero Width Joiner
	0xFE0F: true, // Variation Selector-16
	0x20E3: true, // Combining Enclosing Keycap
}

func inEmojiRanges(r rune) bool {
	for _, rg := range emojiRanges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
	}
	return false
}

// isEmojiCodePoint reports whether r is classified as emoji: it lies
// in one of the well-known emoji blocks, or is one of the special
// joiner/selector/keycap characters used only within emoji sequences.
func isEmojiCodePoint(r rune) bool {
	return inEmojiRanges(r) || emojiSpecials[r]
}

// isSkippedForEmojiCheck reports whether r should be ignored when
// deciding if a line is emoji-only: whitespace and punctuation neither
// count as emoji nor disqualify a line from being emoji-only. Any
// other non-emoji code point (including symbols like arrows or math
// operators) disqualifies the line.
func isSkippedForEmojiCheck(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// IsEmojiOnly reports whether every non-whitespace, non-punctuation
// code point in s is classified as emoji, and at least one emoji was
// seen. An empty string is not emoji-only.
func IsEmojiOnly(s string) bool {
	if s == "" {
		return false
	}

	sawEmoji := false
	for _, r := range s {
		if isSkippedForEmojiCheck(r) {
			continue
		}
		if isEmojiCodePoint(r) {
			sawEmoji = true
			continue
		}
		return false
	}
	return sawEmoji
}
