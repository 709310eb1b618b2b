package dedup

import "testing"

func TestSeenFirstOccurrenceIsNew(t *testing.T) {
	o := New(16, 0)
	if o.Seen("hello") {
		t.Fatalf("first occurrence reported as duplicate")
	}
}

func TestSeenRepeatIsDuplicate(t *testing.T) {
	o := New(16, 0)
	o.Seen("hello")
	if !o.Seen("hello") {
		t.Fatalf("repeat occurrence not reported as duplicate")
	}
}

func TestSeenDistinctLinesBothNew(t *testing.T) {
	o := New(16, 0)
	if o.Seen("hello") {
		t.Fatalf("hello reported as duplicate on first occurrence")
	}
	if o.Seen("world") {
		t.Fatalf("world reported as duplicate on first occurrence")
	}
}

func TestCountTracksDistinctLines(t *testing.T) {
	o := New(16, 0)
	o.Seen("a")
	o.Seen("b")
	o.Seen("a")
	if got := o.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
}

func TestNewZeroExpectedNDoesNotPanic(t *testing.T) {
	o := New(0, 0)
	if o.Seen("x") {
		t.Fatalf("first occurrence with zero-sized hint reported as duplicate")
	}
}

func TestSeenManyDistinctLinesNoFalsePositives(t *testing.T) {
	o := New(1000, 0)
	lines := make([]string, 500)
	for i := range lines {
		lines[i] = string(rune('a'+i%26)) + string(rune('A'+i%26)) + string(rune(i))
	}
	for _, l := range lines {
		if o.Seen(l) {
			t.Fatalf("line %q incorrectly reported as duplicate", l)
		}
	}
	for _, l := range lines {
		if !o.Seen(l) {
			t.Fatalf("line %q (second pass) incorrectly reported as new", l)
		}
	}
}
