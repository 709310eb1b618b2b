package unicodeutil

import "testing"

func TestNormalizeCompatibilityFoldsWidth(t *testing.T) {
	got := Normalize("Ｈｅｌｌｏ", FormCompatibility)
	if got != "Hello" {
		t.Fatalf("Normalize(FormCompatibility) = %q, want %q", got, "Hello")
	}
}

func TestNormalizeCanonicalPreservesWidth(t *testing.T) {
	got := Normalize("Ｈｅｌｌｏ", FormCanonical)
	if got == "Hello" {
		t.Fatalf("Normalize(FormCanonical) folded full-width, want it preserved")
	}
}

func TestStripControlFormat(t *testing.T) {
	in := "a b​c" // NUL (Cc) + zero-width space (Cf)
	got := StripControlFormat(in)
	if got != "abc" {
		t.Fatalf("StripControlFormat(%q) = %q, want %q", in, got, "abc")
	}
}

func TestStripControlFormatNoOpFastPath(t *testing.T) {
	in := "plain ascii"
	if got := StripControlFormat(in); got != in {
		t.Fatalf("StripControlFormat(%q) = %q, want unchanged", in, got)
	}
}

func TestContainsDigit(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"abc", false},
		{"abc123", true},
		{"v2.0", true},
		{"", false},
	}
	for _, c := range cases {
		if got := ContainsDigit(c.in); got != c.want {
			t.Errorf("ContainsDigit(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFoldCase(t *testing.T) {
	if got := FoldCase("HELLO World"); got != "hello world" {
		t.Fatalf("FoldCase = %q, want %q", got, "hello world")
	}
}

func TestIsWhitespaceOnly(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"  a ", false},
	}
	for _, c := range cases {
		if got := IsWhitespaceOnly(c.in); got != c.want {
			t.Errorf("IsWhitespaceOnly(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestHashDeterministic(t *testing.T) {
	a := Hash("hello world")
	b := Hash("hello world")
	if a != b {
		t.Fatalf("Hash not deterministic: %d != %d", a, b)
	}
	if Hash("hello") == Hash("world") {
		t.Fatalf("Hash collided on distinct short inputs (suspicious, not strictly required)")
	}
}

func TestGenerateNgramsBasic(t *testing.T) {
	got := GenerateNgrams("abcd", 2)
	want := []string{"ab", "bc", "cd"}
	if len(got) != len(want) {
		t.Fatalf("GenerateNgrams len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GenerateNgrams[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGenerateNgramsNeverCrossesNewline(t *testing.T) {
	got := GenerateNgrams("ab\ncd", 2)
	for _, g := range got {
		if g == "b\n" || g == "\nc" {
			t.Fatalf("GenerateNgrams crossed a newline: got %q in %v", g, got)
		}
	}
}

func TestGenerateNgramsShorterThanNIsEmpty(t *testing.T) {
	if got := GenerateNgrams("a", 2); got != nil {
		t.Fatalf("GenerateNgrams with text shorter than n = %v, want nil", got)
	}
}

func TestGenerateNgramsInvalidN(t *testing.T) {
	if got := GenerateNgrams("abc", 0); got != nil {
		t.Fatalf("GenerateNgrams with n=0 = %v, want nil", got)
	}
}

func TestDecompose(t *testing.T) {
	got := Decompose("日本語")
	want := []string{"日", "本", "語"}
	if len(got) != len(want) {
		t.Fatalf("Decompose len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Decompose[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsEmojiOnly(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"😀", true},
		{"😀 😀", true},
		{"hello", false},
		{"😀a", false},
		{"", false},
		{"   ", false}, // whitespace only, no emoji seen
	}
	for _, c := range cases {
		if got := IsEmojiOnly(c.in); got != c.want {
			t.Errorf("IsEmojiOnly(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRuneCount(t *testing.T) {
	if RuneCount("日本語") != 3 {
		t.Fatalf("RuneCount = %d, want 3", RuneCount("日本語"))
	}
}

func TestValidUTF8(t *testing.T) {
	if !ValidUTF8("hello") {
		t.Fatalf("ValidUTF8(valid ascii) = false")
	}
	if ValidUTF8(string([]byte{0xff, 0xfe})) {
		t.Fatalf("ValidUTF8(invalid bytes) = true")
	}
}
