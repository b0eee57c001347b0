package morph

import (
	"testing"

	"github.com/bastiangx/teny/pkg/lexicon"
)

func newLemmatizer(t *testing.T) (*Lemmatizer, *lexicon.Lexicon) {
	t.Helper()
	lex, err := lexicon.Default()
	if err != nil {
		t.Fatalf("failed to load lexicon: %v", err)
	}
	return New(lex), lex
}

func TestFindRoot(t *testing.T) {
	l, _ := newLemmatizer(t)
	testCases := []struct {
		input    string
		expected string
		desc     string
	}{
		{"mahafantatra", "fantatra", "exception"},
		{"Manoratra", "soratra", "exception, capitalized"},
		{"manao", "ao", "exception with short root"},
		{"fantatra", "fantatra", "exception root stays put"},
		{"ianatra", "ianatra", "exception root starting with a prefix"},
		{"fanasana", "asa", "prefix fan then suffix na"},
		{"mitady", "tady", "prefix only"},
		{"trano", "trano", "nothing to strip"},
		{"asa", "asa", "too short to strip"},
		{"mpanoratra", "oratr", "prefix mpan then suffix a"},
	}
	for _, tc := range testCases {
		if got := l.FindRoot(tc.input); got != tc.expected {
			t.Errorf("%s: FindRoot(%q) = %q, want %q", tc.desc, tc.input, got, tc.expected)
		}
	}
}

func TestFindRootNeverEmpty(t *testing.T) {
	l, lex := newLemmatizer(t)
	lex.Words().Range(func(w string) bool {
		if l.FindRoot(w) == "" {
			t.Errorf("FindRoot(%q) returned an empty root", w)
		}
		return true
	})
	if got := l.FindRoot(""); got != "" {
		t.Errorf("FindRoot(\"\") = %q, want empty", got)
	}
}

func TestFindRootIdempotentOnExceptionRoots(t *testing.T) {
	l, lex := newLemmatizer(t)
	for _, root := range lex.Exceptions().Roots() {
		once := l.FindRoot(root)
		if twice := l.FindRoot(once); twice != once {
			t.Errorf("FindRoot(FindRoot(%q)) = %q, want %q", root, twice, once)
		}
	}
}

func TestDecomposeSkipsExceptions(t *testing.T) {
	l, _ := newLemmatizer(t)
	got := l.Decompose("mahafantatra")
	want := Decomposition{Prefix: "maha", Root: "fantatr", Suffix: "a"}
	if got != want {
		t.Errorf("Decompose(mahafantatra) = %+v, want %+v", got, want)
	}
	if got := l.Decompose(""); got != (Decomposition{}) {
		t.Errorf("Decompose(\"\") = %+v, want zero value", got)
	}
}

func TestLemmatize(t *testing.T) {
	l, _ := newLemmatizer(t)

	lemma := l.Lemmatize("Mahita")
	if !lemma.Exception || lemma.Root != "hita" || lemma.Original != "Mahita" {
		t.Errorf("Lemmatize(Mahita) = %+v", lemma)
	}

	lemma = l.Lemmatize("fanasana")
	if !lemma.HasPrefix() || !lemma.HasSuffix() || lemma.Prefix != "fan" || lemma.Suffix != "na" {
		t.Errorf("Lemmatize(fanasana) = %+v", lemma)
	}

	// second call hits the cache but keeps the caller's spelling
	lemma = l.Lemmatize("FANASANA")
	if lemma.Original != "FANASANA" || lemma.Root != "asa" {
		t.Errorf("cached Lemmatize(FANASANA) = %+v", lemma)
	}
}
