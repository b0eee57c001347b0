package spell

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newChecker(t testing.TB, opts ...Option) *Checker {
	t.Helper()
	lex, err := lexicon.Default()
	if err != nil {
		t.Fatalf("failed to load lexicon: %v", err)
	}
	return New(lex, opts...)
}

func TestDistance(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected int
	}{
		{"tsara", "tsara", 0},
		{"", "trano", 5},
		{"trano", "", 5},
		{"tsra", "tsara", 1},
		{"kitten", "sitting", 3},
		{"fô", "fo", 1},
	}
	for _, tc := range testCases {
		if got := Distance(tc.a, tc.b); got != tc.expected {
			t.Errorf("Distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.expected)
		}
		if Distance(tc.a, tc.b) != Distance(tc.b, tc.a) {
			t.Errorf("Distance(%q, %q) is not symmetric", tc.a, tc.b)
		}
	}
}

func TestIsKnown(t *testing.T) {
	c := newChecker(t)
	testCases := []struct {
		input    string
		expected bool
		desc     string
	}{
		{"dia", true, "dictionary word"},
		{"Tsara!", true, "case and punctuation"},
		{"amin'ny", true, "inner apostrophe"},
		{"mitady", true, "derivational prefix"},
		{"fanasana", true, "derivational prefix fan"},
		{"xkqz", false, "no match"},
		{"", false, "empty"},
		{"  ", false, "blank"},
	}
	for _, tc := range testCases {
		if got := c.IsKnown(tc.input); got != tc.expected {
			t.Errorf("%s: IsKnown(%q) = %v, want %v", tc.desc, tc.input, got, tc.expected)
		}
	}
}

func TestSuggest(t *testing.T) {
	c := newChecker(t)

	got := c.Suggest("tsra", 5)
	found := false
	for _, w := range got {
		if w == "tsara" {
			found = true
		}
		if d := Distance("tsra", w); d > DefaultMaxDistance {
			t.Errorf("suggestion %q is %d edits away", w, d)
		}
	}
	if !found {
		t.Errorf("expected tsara in %v", got)
	}
	if len(got) > 5 {
		t.Errorf("got %d suggestions, limit was 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if Distance("tsra", got[i-1]) > Distance("tsra", got[i]) {
			t.Errorf("suggestions not ordered by distance: %v", got)
		}
	}
}

func TestSuggestTiesAreLexicographic(t *testing.T) {
	lex, err := lexicon.Build(lexicon.Source{Words: []string{"tsy", "tsa", "aty", "ity"}})
	if err != nil {
		t.Fatal(err)
	}
	c := New(lex, WithMaxDistance(1))
	got := c.Suggest("ty", 10)
	want := []string{"aty", "ity", "tsy"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Suggest(ty) = %v, want %v", got, want)
	}
}

func TestSuggestEdgeCases(t *testing.T) {
	c := newChecker(t)
	if got := c.Suggest("", 5); len(got) != 0 {
		t.Errorf("expected no suggestions for empty input, got %v", got)
	}
	if got := c.Suggest("xkqzwvbn", 5); len(got) != 0 {
		t.Errorf("expected no suggestions for far input, got %v", got)
	}
	if got := c.Suggest("tsra", 0); len(got) > DefaultLimit {
		t.Errorf("limit 0 should fall back to %d, got %d", DefaultLimit, len(got))
	}
	if got := c.Suggest("tsra", 1); len(got) != 1 || got[0] != "tsara" {
		t.Errorf("Suggest(tsra, 1) = %v, want [tsara]", got)
	}
}

func TestSuggestCacheReturnsCopies(t *testing.T) {
	c := newChecker(t)
	first := c.Suggest("tsra", 3)
	if len(first) == 0 {
		t.Fatal("expected suggestions")
	}
	first[0] = "mutated"
	second := c.Suggest("tsra", 3)
	if second[0] == "mutated" {
		t.Error("cached suggestions were modified through a returned slice")
	}
	if c.Stats()["suggestCache"] != 1 {
		t.Errorf("expected one cache entry, got %v", c.Stats())
	}
}

func TestCheckerConcurrent(t *testing.T) {
	c := newChecker(t)
	words := []string{"tsra", "trno", "mandha", "dia", "xkqz"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				w := words[(worker+j)%len(words)]
				c.IsKnown(w)
				c.Suggest(w, 3)
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkSuggest(b *testing.B) {
	c := newChecker(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.suggestions.Clear()
		c.Suggest("mandha", 5)
	}
}
