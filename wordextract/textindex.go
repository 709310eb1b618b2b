package wordextract

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultLookupCacheSize bounds the number of distinct candidate
// patterns whose occurrence positions are cached. Verification
// repeatedly re-queries the same handful of short n-gram extensions,
// so a small LRU cache avoids re-scanning the whole corpus for each
// one.
const defaultLookupCacheSize = 4096

// textIndex supports substring search and code-point-aligned context
// extraction over a single in-memory corpus, used by the verifier to
// check a candidate's presence, count its occurrences, and pull
// surrounding context.
type textIndex struct {
	text  string
	cache *lru.Cache[string, []int]
}

func newTextIndex(text string) *textIndex {
	cache, _ := lru.New[string, []int](defaultLookupCacheSize)
	return &textIndex{text: text, cache: cache}
}

// Contains reports whether pattern occurs anywhere in the index.
func (idx *textIndex) Contains(pattern string) bool {
	return len(idx.FindAll(pattern)) > 0
}

// FindAll returns every byte offset at which pattern occurs,
// non-overlapping, in order. Results are cached per pattern.
func (idx *textIndex) FindAll(pattern string) []int {
	if pattern == "" {
		return nil
	}
	if cached, ok := idx.cache.Get(pattern); ok {
		return cached
	}

	var positions []int
	pos := 0
	for {
		i := strings.Index(idx.text[pos:], pattern)
		if i < 0 {
			break
		}
		abs := pos + i
		positions = append(positions, abs)
		pos = abs + len(pattern)
	}

	idx.cache.Add(pattern, positions)
	return positions
}

// GetContext returns up to contextWindow code points on either side
// of the byte offset position, code-point-aligned so a window never
// splits a multi-byte rune.
func (idx *textIndex) GetContext(position, contextWindow int) string {
	runes := []rune(idx.text)
	cpIndex := 0
	bytePos := 0
	for bytePos < position && cpIndex < len(runes) {
		bytePos += len(string(runes[cpIndex]))
		cpIndex++
	}

	start := cpIndex - contextWindow
	if start < 0 {
		start = 0
	}
	end := cpIndex + contextWindow
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}
