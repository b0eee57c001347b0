/*
Package lexicon builds the immutable word tables every analyzer reads from.

A Lexicon is assembled once from a Source (the embedded Malagasy bundle, extra
YAML bundles and plain word lists) and never changes afterwards, so it can be
shared freely between goroutines. Components receive it at construction time;
tests build small ones straight from a Source literal.

	lex, err := lexicon.Default()
	lex.Words().Has("tsara")           // true
	lex.Exceptions().Lookup("mahita")  // "hita", true
*/
package lexicon

import (
	_ "embed"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

//go:embed data/malagasy.yaml
var builtin []byte

// GrammarSource is the raw form of Grammar.
type GrammarSource struct {
	VerbPrefixes []string `yaml:"verb_prefixes"`
	Conjunctions []string `yaml:"conjunctions"`
	Prepositions []string `yaml:"prepositions"`
}

// RulesSource is the raw form of Rules.
type RulesSource struct {
	Forbidden       []ForbiddenPattern `yaml:"forbidden"`
	InitialClusters []string           `yaml:"initial_clusters"`
	RareLetters     string             `yaml:"rare_letters"`
	Foreign         map[string]string  `yaml:"foreign"`
}

// Source is the unvalidated content of a lexicon bundle.
type Source struct {
	MinRootLength        int                 `yaml:"min_root_length"`
	Words                []string            `yaml:"words"`
	DerivationalPrefixes []string            `yaml:"derivational_prefixes"`
	Prefixes             []string            `yaml:"prefixes"`
	Suffixes             []string            `yaml:"suffixes"`
	Exceptions           map[string]string   `yaml:"exceptions"`
	Positive             []string            `yaml:"positive"`
	Negative             []string            `yaml:"negative"`
	Bigrams              map[string][]string `yaml:"bigrams"`
	Phrases              []string            `yaml:"phrases"`
	PrefixClasses        map[string][]string `yaml:"prefix_classes"`
	Rules                RulesSource         `yaml:"rules"`
	Grammar              GrammarSource       `yaml:"grammar"`
	Glossary             map[string]string   `yaml:"glossary"`
}

// ParseSource decodes a YAML bundle.
func ParseSource(data []byte) (Source, error) {
	var src Source
	if err := yaml.Unmarshal(data, &src); err != nil {
		return Source{}, fmt.Errorf("lexicon: decode bundle: %w", err)
	}
	return src, nil
}

// Merge folds other into s. Lists are appended, map entries of other win,
// and a non-zero MinRootLength or RareLetters replaces the current one.
func (s *Source) Merge(other Source) {
	if other.MinRootLength > 0 {
		s.MinRootLength = other.MinRootLength
	}
	s.Words = append(s.Words, other.Words...)
	s.DerivationalPrefixes = append(s.DerivationalPrefixes, other.DerivationalPrefixes...)
	s.Prefixes = append(s.Prefixes, other.Prefixes...)
	s.Suffixes = append(s.Suffixes, other.Suffixes...)
	s.Positive = append(s.Positive, other.Positive...)
	s.Negative = append(s.Negative, other.Negative...)
	s.Phrases = append(s.Phrases, other.Phrases...)
	s.Exceptions = mergeMap(s.Exceptions, other.Exceptions)
	s.Bigrams = mergeMap(s.Bigrams, other.Bigrams)
	s.PrefixClasses = mergeMap(s.PrefixClasses, other.PrefixClasses)
	s.Glossary = mergeMap(s.Glossary, other.Glossary)

	s.Rules.Forbidden = append(s.Rules.Forbidden, other.Rules.Forbidden...)
	s.Rules.InitialClusters = append(s.Rules.InitialClusters, other.Rules.InitialClusters...)
	if other.Rules.RareLetters != "" {
		s.Rules.RareLetters = other.Rules.RareLetters
	}
	s.Rules.Foreign = mergeMap(s.Rules.Foreign, other.Rules.Foreign)

	s.Grammar.VerbPrefixes = append(s.Grammar.VerbPrefixes, other.Grammar.VerbPrefixes...)
	s.Grammar.Conjunctions = append(s.Grammar.Conjunctions, other.Grammar.Conjunctions...)
	s.Grammar.Prepositions = append(s.Grammar.Prepositions, other.Grammar.Prepositions...)
}

func mergeMap[V any](dst, src map[string]V) map[string]V {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]V, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// Lexicon is the read-only view built from a Source.
type Lexicon struct {
	words        *WordSet
	derivational []string
	affixes      *AffixTable
	exceptions   *ExceptionMap
	polarity     *Polarity
	completion   *CompletionIndex
	rules        Rules
	grammar      Grammar
	glossary     *Glossary
}

// Build validates src and freezes it into a Lexicon.
func Build(src Source) (*Lexicon, error) {
	words := newWordSet(src.Words)
	if words.Len() == 0 {
		return nil, ErrEmptyLexicon
	}

	affixes := newAffixTable(src.Prefixes, src.Suffixes, src.MinRootLength)
	forbidden := make([]ForbiddenPattern, 0, len(src.Rules.Forbidden))
	for _, fp := range src.Rules.Forbidden {
		if fp.Pattern == "" {
			return nil, fmt.Errorf("lexicon: forbidden rule with empty pattern (hint %q)", fp.Hint)
		}
		forbidden = append(forbidden, fp)
	}

	lex := &Lexicon{
		words:        words,
		derivational: longestFirst(src.DerivationalPrefixes),
		affixes:      affixes,
		exceptions:   newExceptionMap(src.Exceptions),
		polarity: &Polarity{
			positive: newWordSet(src.Positive),
			negative: newWordSet(src.Negative),
		},
		completion: newCompletionIndex(src.Bigrams, src.Phrases, src.PrefixClasses),
		rules: Rules{
			Forbidden:       forbidden,
			InitialClusters: normalizeList(src.Rules.InitialClusters),
			RareLetters:     src.Rules.RareLetters,
			Foreign:         maps.Clone(src.Rules.Foreign),
		},
		grammar: Grammar{
			VerbPrefixes: longestFirst(src.Grammar.VerbPrefixes),
			Conjunctions: newWordSet(src.Grammar.Conjunctions),
			Prepositions: newWordSet(src.Grammar.Prepositions),
		},
		glossary: newGlossary(src.Glossary),
	}
	return lex, nil
}

// BuiltinSource returns the embedded Malagasy bundle.
func BuiltinSource() (Source, error) {
	return ParseSource(builtin)
}

// Default builds the lexicon from the embedded bundle alone.
func Default() (*Lexicon, error) {
	src, err := BuiltinSource()
	if err != nil {
		return nil, err
	}
	return Build(src)
}

func (l *Lexicon) Words() *WordSet { return l.words }
func (l *Lexicon) Affixes() *AffixTable { return l.affixes }
func (l *Lexicon) Exceptions() *ExceptionMap { return l.exceptions }
func (l *Lexicon) Polarity() *Polarity { return l.polarity }
func (l *Lexicon) Completion() *CompletionIndex { return l.completion }
func (l *Lexicon) Glossary() *Glossary { return l.glossary }
func (l *Lexicon) Grammar() Grammar { return l.grammar }
func (l *Lexicon) Rules() Rules { return l.rules.clone() }

// DerivationalPrefix returns the longest derivational prefix word starts with.
func (l *Lexicon) DerivationalPrefix(word string) (string, bool) {
	return LongestPrefix(l.derivational, word)
}

// Stats returns table sizes, keyed the same way the server reports them.
func (l *Lexicon) Stats() map[string]int {
	pos, neg := l.polarity.Sizes()
	stats := map[string]int{
		"words":      l.words.Len(),
		"prefixes":   len(l.affixes.prefixes),
		"suffixes":   len(l.affixes.suffixes),
		"exceptions": l.exceptions.Len(),
		"positive":   pos,
		"negative":   neg,
		"glossary":   l.glossary.Len(),
	}
	maps.Copy(stats, l.completion.Sizes())
	return stats
}
