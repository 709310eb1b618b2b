package wordextract

import (
	"context"
	"testing"

	"github.com/libraz/suzume-feedmill/pmi"
)

func TestTrieFindByPrefix(t *testing.T) {
	tr := newNgramTrie()
	tr.Add("hello", 1.0, 5)
	tr.Add("help", 2.0, 3)
	tr.Add("world", 0.5, 1)

	got := tr.FindByPrefix("hel")
	if len(got) != 2 {
		t.Fatalf("FindByPrefix(hel) = %v, want 2 entries", got)
	}
}

func TestTrieFindBySuffix(t *testing.T) {
	tr := newNgramTrie()
	tr.Add("running", 1.0, 1)
	tr.Add("jumping", 1.0, 1)
	tr.Add("walked", 1.0, 1)

	got := tr.FindBySuffix("ing")
	if len(got) != 2 {
		t.Fatalf("FindBySuffix(ing) = %v, want 2 entries", got)
	}
}

func TestTrieNodeCountGrows(t *testing.T) {
	tr := newNgramTrie()
	before := tr.NodeCount()
	tr.Add("abc", 1.0, 1)
	if tr.NodeCount() <= before {
		t.Fatalf("NodeCount did not grow after Add")
	}
}

func TestTextIndexFindAll(t *testing.T) {
	idx := newTextIndex("the cat sat on the mat with the cat")
	positions := idx.FindAll("cat")
	if len(positions) != 2 {
		t.Fatalf("FindAll(cat) = %v, want 2 positions", positions)
	}
}

func TestTextIndexContains(t *testing.T) {
	idx := newTextIndex("hello world")
	if !idx.Contains("world") {
		t.Fatalf("Contains(world) = false")
	}
	if idx.Contains("xyz") {
		t.Fatalf("Contains(xyz) = true")
	}
}

func TestTextIndexGetContextMultibyteSafe(t *testing.T) {
	idx := newTextIndex("日本語のテキストです")
	positions := idx.FindAll("テキスト")
	if len(positions) == 0 {
		t.Fatalf("expected at least one match")
	}
	ctx := idx.GetContext(positions[0], 3)
	if ctx == "" {
		t.Fatalf("GetContext returned empty string")
	}
}

func TestFilterCandidatesRemovesLowScoreSubstrings(t *testing.T) {
	candidates := []VerifiedCandidate{
		{Text: "hello world", Score: 5.0},
		{Text: "hello", Score: 0.1},
	}
	opts := DefaultOptions()
	opts.MinLength = 1
	opts.MaxLength = 50
	opts.MinScore = 0

	out := filterCandidates(candidates, opts)
	for _, c := range out {
		if c.Text == "hello" {
			t.Fatalf("low-score substring candidate survived: %+v", out)
		}
	}
}

func TestFilterCandidatesKeepsStrongSubstring(t *testing.T) {
	candidates := []VerifiedCandidate{
		{Text: "hello world", Score: 1.0},
		{Text: "hello", Score: 0.95},
	}
	opts := DefaultOptions()
	opts.MinLength = 1
	opts.MaxLength = 50
	opts.MinScore = 0
	opts.RemoveOverlapping = false

	out := filterCandidates(candidates, opts)
	found := false
	for _, c := range out {
		if c.Text == "hello" {
			found = true
		}
	}
	if !found {
		t.Fatalf("strong-scoring substring candidate incorrectly removed: %+v", out)
	}
}

func TestRankCandidatesSortedDescending(t *testing.T) {
	candidates := []VerifiedCandidate{
		{Text: "a", Score: 1.0, ContextScore: 0.1, StatisticalScore: 0.1},
		{Text: "bbbb", Score: 9.0, ContextScore: 0.9, StatisticalScore: 0.9},
	}
	ranked := rankCandidates(candidates, DefaultOptions())
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("ranked candidates not sorted descending: %+v", ranked)
		}
	}
}

func TestRunEndToEnd(t *testing.T) {
	scores := []pmi.Score{
		{Ngram: "日本語", PMI: 5.0, Frequency: 10},
		{Ngram: "は", PMI: 0.1, Frequency: 100},
	}
	opts := DefaultOptions()
	opts.MinPMIScore = 1.0
	opts.MinScore = 0
	opts.MinLength = 1

	result, err := Run(context.Background(), scores, "日本語は面白い。日本語を勉強する。", opts, nil, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	found := false
	for _, c := range result.Candidates {
		if c.Text == "日本語" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 日本語 among ranked candidates, got %+v", result.Candidates)
	}
}

func TestRunFiltersCandidatesNotInOriginalText(t *testing.T) {
	scores := []pmi.Score{
		{Ngram: "nonexistent", PMI: 5.0, Frequency: 10},
	}
	opts := DefaultOptions()
	opts.MinPMIScore = 1.0
	opts.MinLength = 1
	opts.MinScore = 0

	result, err := Run(context.Background(), scores, "this text does not have that word", opts, nil, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Candidates) != 0 {
		t.Fatalf("expected no candidates, got %+v", result.Candidates)
	}
}
