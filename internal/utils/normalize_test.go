package utils

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Tsara", "tsara"},
		{"  dia  ", "dia"},
		{"tsara!", "tsara"},
		{"«trano»", "trano"},
		{"amin'ny", "amin'ny"},
		{"...", ""},
		{"", ""},
	}
	for _, tc := range testCases {
		if got := Normalize(tc.input); got != tc.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestTokenizeOffsets(t *testing.T) {
	text := "  Salama,   ianareo!\n(tsara) é"
	tokens := Tokenize(text)
	runes := []rune(text)

	want := []struct {
		norm   string
		offset int
	}{
		{"salama", 2},
		{"ianareo", 12},
		{"tsara", 22},
		{"é", 29},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		tok := tokens[i]
		if tok.Norm != w.norm || tok.Offset != w.offset {
			t.Errorf("token %d = {%q @%d}, want {%q @%d}", i, tok.Norm, tok.Offset, w.norm, w.offset)
		}
		if got := string(runes[tok.Offset : tok.Offset+tok.Length]); got != tok.Text {
			t.Errorf("token %d span %q does not match text %q", i, got, tok.Text)
		}
	}
}

func TestTokenizeSkipsPunctuationOnly(t *testing.T) {
	if tokens := Tokenize(" -- ... !! "); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %+v", tokens)
	}
}

func TestSplitSentences(t *testing.T) {
	text := "Manao ahoana. Tsara!!  Ary ianao?"
	spans := SplitSentences(text)
	want := []Span{
		{Text: "Manao ahoana", Offset: 0},
		{Text: "Tsara", Offset: 14},
		{Text: "Ary ianao", Offset: 23},
	}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d: %+v", len(spans), len(want), spans)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, spans[i], want[i])
		}
	}
}

func TestSuggestionFilter(t *testing.T) {
	f := NewSuggestionFilter(3, "aho")
	for _, w := range []string{"aho", "dia", "Dia", "fa", "ny", "izy"} {
		f.Add(w)
	}
	got := f.Words()
	want := []string{"dia", "fa", "ny"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if !f.Full() {
		t.Error("filter should be full")
	}
}

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"tsara", true},
		{"amin'ny", true},
		{"1234", false},
		{"ts4ra", false},
		{"aaaa", false},
		{"a@b", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := IsValidInput(tc.input); got != tc.expected {
			t.Errorf("IsValidInput(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestIsOnlyNumbers(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"2024", true},
		{"tsar4", false},
		{"4x4", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := IsOnlyNumbers(tc.input); got != tc.expected {
			t.Errorf("IsOnlyNumbers(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestClampLimit(t *testing.T) {
	if got := ClampLimit(0, 5, 64); got != 5 {
		t.Errorf("ClampLimit(0) = %d, want 5", got)
	}
	if got := ClampLimit(100, 5, 64); got != 64 {
		t.Errorf("ClampLimit(100) = %d, want 64", got)
	}
	if got := ClampLimit(7, 5, 0); got != 7 {
		t.Errorf("ClampLimit(7) = %d, want 7", got)
	}
}
