package parallel

import "unicode/utf8"

// Chunk is a byte-offset-stable slice of a larger text, used to hand
// workers independent ranges of a large corpus without re-copying it.
// The invariant text[c.Start:c.End] == c.Text holds for every chunk
// returned by SplitLines, for any valid UTF-8 input.
type Chunk struct {
	Text  string
	Start int
	End   int
}

// SplitLines partitions text into at most n chunks, each containing
// whole lines only: a chunk boundary never falls inside a multi-byte
// rune and never inside a line, so a line-oriented consumer (n-gram
// counting, per-line normalization) can process each chunk completely
// independently of the others. Returns fewer than n chunks if text has
// fewer line breaks than n-1, a single chunk covering the whole input
// if n <= 1, and nil if text is empty.
func SplitLines(text string, n int) []Chunk {
	if text == "" {
		return nil
	}
	if n <= 1 {
		return []Chunk{{Text: text, Start: 0, End: len(text)}}
	}

	lineStarts := findLineStarts(text)
	targetSize := len(text) / n
	if targetSize == 0 {
		targetSize = 1
	}

	chunks := make([]Chunk, 0, n)
	start := 0
	for _, ls := range lineStarts {
		if ls-start >= targetSize && len(chunks) < n-1 {
			chunks = append(chunks, Chunk{Text: text[start:ls], Start: start, End: ls})
			start = ls
		}
	}
	if start < len(text) {
		chunks = append(chunks, Chunk{Text: text[start:], Start: start, End: len(text)})
	}
	return chunks
}

// findLineStarts returns the byte offset immediately after each
// newline in text (i.e. every candidate chunk-boundary position),
// skipping the final offset if it equals len(text).
func findLineStarts(text string) []int {
	var starts []int
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r == '\n' && i < len(text) {
			starts = append(starts, i)
		}
	}
	return starts
}
