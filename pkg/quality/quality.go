/*
Package quality runs every checker over a document and grades the result.

Check tokenizes the text once, runs the per-word checks (spelling, morphology,
phonotactics, orthography and language), then the per-sentence structure
checks, and merges everything into a single Report ordered by position in the
text. Offsets and lengths count runes so they map straight onto editor ranges.
*/
package quality

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/bastiangx/teny/pkg/morph"
	"github.com/bastiangx/teny/pkg/sentiment"
	"github.com/charmbracelet/log"
)

// Speller is the part of spell.Checker the aggregator needs.
type Speller interface {
	IsKnown(word string) bool
	InLexicon(word string) bool
	Suggest(word string, limit int) []string
}

// Lemmatizer is the part of morph.Lemmatizer the aggregator needs.
type Lemmatizer interface {
	Lemmatize(word string) morph.Lemma
}

// SentimentAnalyzer is the part of sentiment.Scorer the aggregator needs.
type SentimentAnalyzer interface {
	Analyze(text string) sentiment.Result
}

const (
	DefaultMinWordLength    = 3
	DefaultAlternativeLimit = 3
)

// Config holds aggregator options.
type Config struct {
	// MinWordLength is the shortest token, in runes, sent to the spell checker.
	MinWordLength int
	// AlternativeLimit caps the corrections attached to a spelling finding.
	AlternativeLimit int
}

// Checker builds Reports. Safe for concurrent use when its collaborators are.
type Checker struct {
	lex       *lexicon.Lexicon
	rules     lexicon.Rules
	grammar   lexicon.Grammar
	speller   Speller
	lemmas    Lemmatizer
	sentiment SentimentAnalyzer
	cfg       Config
}

// New wires a Checker from its collaborators.
func New(lex *lexicon.Lexicon, sp Speller, lm Lemmatizer, sa SentimentAnalyzer, cfg Config) *Checker {
	if cfg.MinWordLength <= 0 {
		cfg.MinWordLength = DefaultMinWordLength
	}
	if cfg.AlternativeLimit <= 0 {
		cfg.AlternativeLimit = DefaultAlternativeLimit
	}
	return &Checker{
		lex:       lex,
		rules:     lex.Rules(),
		grammar:   lex.Grammar(),
		speller:   sp,
		lemmas:    lm,
		sentiment: sa,
		cfg:       cfg,
	}
}

// Check analyzes text. It never fails; empty text gives an empty, perfect report.
func (c *Checker) Check(text string) Report {
	tokens := utils.Tokenize(text)
	suggestions := []Suggestion{}
	unique := make(map[string]struct{}, len(tokens))
	lemmas := make([]morph.Lemma, 0, len(tokens))

	for _, tok := range tokens {
		unique[tok.Norm] = struct{}{}
		if utils.IsOnlyNumbers(tok.Norm) {
			continue
		}
		lemmas = append(lemmas, c.lemmas.Lemmatize(tok.Text))
		suggestions = append(suggestions, c.checkToken(tok)...)
	}

	sentences, structural := c.analyzeSentences(text)
	suggestions = append(suggestions, structural...)
	sortSuggestions(suggestions)

	stats := c.statistics(tokens, unique, sentences, suggestions)
	report := Report{
		Suggestions: suggestions,
		ByCategory:  groupByCategory(suggestions),
		Statistics:  stats,
		Score:       ComputeScore(stats),
		Sentiment:   c.sentiment.Analyze(text),
		Sentences:   sentences,
		Lemmas:      lemmas,
	}
	log.Debugf("quality: %d words, %d findings, score %d", stats.TotalWords, len(suggestions), report.Score.Score)
	return report
}

func sortSuggestions(s []Suggestion) {
	slices.SortStableFunc(s, func(a, b Suggestion) int {
		if c := cmp.Compare(a.Offset, b.Offset); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Severity.rank(), b.Severity.rank()); c != 0 {
			return c
		}
		return strings.Compare(string(a.Category), string(b.Category))
	})
}

func groupByCategory(s []Suggestion) map[Category][]Suggestion {
	groups := make(map[Category][]Suggestion)
	for _, sg := range s {
		groups[sg.Category] = append(groups[sg.Category], sg)
	}
	return groups
}

func (c *Checker) statistics(tokens []utils.Token, unique map[string]struct{}, sentences []SentenceAnalysis, s []Suggestion) Statistics {
	stats := Statistics{
		TotalWords:       len(tokens),
		UniqueWords:      len(unique),
		TotalSentences:   len(sentences),
		TotalSuggestions: len(s),
	}
	for _, sg := range s {
		switch sg.Severity {
		case SeverityError:
			stats.Errors++
		case SeverityWarning:
			stats.Warnings++
		default:
			stats.Info++
		}
	}
	if len(sentences) == 0 {
		return stats
	}

	words, vso := 0, 0
	for _, sa := range sentences {
		words += sa.WordCount
		if sa.VSO {
			vso++
		}
		if sa.Structure != structureSimple {
			stats.ComplexSentences++
		}
	}
	n := float64(len(sentences))
	stats.AverageSentenceLength = round2(float64(words) / n)
	stats.VSOCompliance = round2(float64(vso) / n * 100)
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
