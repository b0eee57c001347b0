/*
Package morph strips Malagasy affixes to recover word roots.

Stripping is a single pass: the exception table first, then at most one
prefix and at most one suffix, each the longest candidate that still leaves
the lexicon's minimum root length. There is no backtracking and the result is
not checked against the dictionary.
*/
package morph

import (
	"strings"
	"sync"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/lexicon"
)

// Decomposition splits a word into its affixes and the remaining root.
type Decomposition struct {
	Prefix string `json:"prefix" msgpack:"p"`
	Root   string `json:"root" msgpack:"r"`
	Suffix string `json:"suffix" msgpack:"s"`
}

// Lemma is the full analysis of one word.
type Lemma struct {
	Original  string `json:"original" msgpack:"o"`
	Root      string `json:"root" msgpack:"r"`
	Prefix    string `json:"prefix,omitempty" msgpack:"p,omitempty"`
	Suffix    string `json:"suffix,omitempty" msgpack:"s,omitempty"`
	Exception bool   `json:"exception" msgpack:"x"`
}

func (l Lemma) HasPrefix() bool { return l.Prefix != "" }
func (l Lemma) HasSuffix() bool { return l.Suffix != "" }

// Lemmatizer finds roots. Safe for concurrent use.
type Lemmatizer struct {
	affixes    *lexicon.AffixTable
	exceptions *lexicon.ExceptionMap
	cache      sync.Map // normalized word -> Lemma
}

// New creates a Lemmatizer over the affix and exception tables of lex.
func New(lex *lexicon.Lexicon) *Lemmatizer {
	return &Lemmatizer{
		affixes:    lex.Affixes(),
		exceptions: lex.Exceptions(),
	}
}

// FindRoot returns the root of word. Empty input gives "".
func (l *Lemmatizer) FindRoot(word string) string {
	return l.Lemmatize(word).Root
}

// Decompose runs the affix search alone, skipping the exception table.
func (l *Lemmatizer) Decompose(word string) Decomposition {
	norm := utils.Normalize(word)
	if norm == "" {
		return Decomposition{}
	}
	return l.strip(norm)
}

// Lemmatize returns the root together with what was stripped to reach it.
func (l *Lemmatizer) Lemmatize(word string) Lemma {
	norm := utils.Normalize(word)
	if norm == "" {
		return Lemma{Original: word}
	}
	if cached, ok := l.cache.Load(norm); ok {
		lemma := cached.(Lemma)
		lemma.Original = word
		return lemma
	}

	var lemma Lemma
	switch root, ok := l.exceptions.Lookup(norm); {
	case ok:
		lemma = Lemma{Root: root, Exception: true}
	case l.exceptions.IsRoot(norm):
		// already a recorded root; stripping it again would damage it
		lemma = Lemma{Root: norm}
	default:
		d := l.strip(norm)
		lemma = Lemma{Root: d.Root, Prefix: d.Prefix, Suffix: d.Suffix}
	}
	l.cache.Store(norm, lemma)

	lemma.Original = word
	return lemma
}

func (l *Lemmatizer) strip(word string) Decomposition {
	d := Decomposition{Root: word}
	if p, ok := l.affixes.MatchPrefix(d.Root); ok {
		d.Prefix = p
		d.Root = strings.TrimPrefix(d.Root, p)
	}
	if s, ok := l.affixes.MatchSuffix(d.Root); ok {
		d.Suffix = s
		d.Root = strings.TrimSuffix(d.Root, s)
	}
	return d
}
