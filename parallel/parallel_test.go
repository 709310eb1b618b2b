package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestForEachInlineSmallSlice(t *testing.T) {
	var calls int32
	items := make([]int, 10)
	err := ForEach(context.Background(), items, Options{}, func(ctx context.Context, i int) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 10 {
		t.Fatalf("calls = %d, want 10", calls)
	}
}

func TestForEachParallelLargeSlice(t *testing.T) {
	var calls int32
	items := make([]int, 500)
	err := ForEach(context.Background(), items, Options{Workers: 4}, func(ctx context.Context, i int) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 500 {
		t.Fatalf("calls = %d, want 500", calls)
	}
}

func TestForEachPropagatesFirstError(t *testing.T) {
	items := make([]int, 500)
	for i := range items {
		items[i] = i
	}
	boom := errors.New("boom")
	err := ForEach(context.Background(), items, Options{}, func(ctx context.Context, i int) error {
		if i == 7 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapping %v", err, boom)
	}
}

func TestMapPreservesOrder(t *testing.T) {
	items := make([]int, 300)
	for i := range items {
		items[i] = i
	}
	out, err := Map(context.Background(), items, Options{}, func(ctx context.Context, i int) (int, error) {
		return i * 2, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range out {
		if v != i*2 {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestMapEmptyInput(t *testing.T) {
	out, err := Map(context.Background(), []int{}, Options{}, func(ctx context.Context, i int) (int, error) {
		return i, nil
	})
	if err != nil || len(out) != 0 {
		t.Fatalf("Map(empty) = %v, %v", out, err)
	}
}

func TestSplitLinesPreservesByteOffsetInvariant(t *testing.T) {
	text := "line one\nline two\nline three\nline four\n"
	chunks := SplitLines(text, 3)
	for _, c := range chunks {
		if text[c.Start:c.End] != c.Text {
			t.Fatalf("byte offset invariant violated for chunk %+v", c)
		}
	}
}

func TestSplitLinesNeverSplitsALine(t *testing.T) {
	text := "abc\ndef\nghi\njkl\nmno\n"
	chunks := SplitLines(text, 3)
	for _, c := range chunks {
		if len(c.Text) > 0 && c.Text[len(c.Text)-1] != '\n' && c.End != len(text) {
			t.Fatalf("chunk does not end on a line boundary: %q", c.Text)
		}
	}
}

func TestSplitLinesSingleChunk(t *testing.T) {
	text := "only one chunk\n"
	chunks := SplitLines(text, 1)
	if len(chunks) != 1 || chunks[0].Text != text {
		t.Fatalf("SplitLines(n=1) = %+v, want single chunk covering whole text", chunks)
	}
}

func TestSplitLinesEmptyText(t *testing.T) {
	if chunks := SplitLines("", 4); chunks != nil {
		t.Fatalf("SplitLines(empty) = %v, want nil", chunks)
	}
}

func TestSplitLinesMultibyteSafe(t *testing.T) {
	text := "日本語の行\n次の行です\n三番目の行\n"
	chunks := SplitLines(text, 2)
	for _, c := range chunks {
		if text[c.Start:c.End] != c.Text {
			t.Fatalf("multibyte chunk violated offset invariant: %+v", c)
		}
	}
}
