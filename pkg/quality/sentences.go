package quality

import (
	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/lexicon"
)

const (
	structureSimple   = "simple"
	structureCompound = "compound"
	structureComplex  = "complex"

	compoundOver     = 10
	noVerbOver       = 3
	verbFirstOver    = 4
	longSentenceOver = 20
)

// analyzeSentences describes each sentence and reports structure findings.
func (c *Checker) analyzeSentences(text string) ([]SentenceAnalysis, []Suggestion) {
	var analyses []SentenceAnalysis
	var out []Suggestion
	for _, span := range utils.SplitSentences(text) {
		tokens := utils.Tokenize(span.Text)
		if len(tokens) == 0 {
			continue
		}
		sa := analyzeSentence(span, tokens, c.grammar)
		analyses = append(analyses, sa)

		at := func(sev Severity, msg, hint string) Suggestion {
			return Suggestion{
				Offset:   span.Offset,
				Length:   utils.RuneLen(span.Text),
				Word:     span.Text,
				Severity: sev,
				Category: CategoryStructure,
				Message:  msg,
				Hint:     hint,
			}
		}
		switch {
		case sa.WordCount < 2:
			out = append(out, at(SeverityInfo, "Sentence has a single word", ""))
		case !sa.HasVerb && sa.WordCount > noVerbOver:
			out = append(out, at(SeverityWarning, "No verb found in this sentence", ""))
		case sa.HasVerb && !sa.VSO && sa.WordCount > verbFirstOver:
			out = append(out, at(SeverityInfo, "Verb is not in first position",
				"Malagasy sentences usually follow verb-object-subject order"))
		}
		if sa.WordCount > longSentenceOver && len(sa.Conjunctions) == 0 {
			out = append(out, at(SeverityWarning, "Long sentence without a conjunction",
				"Consider splitting it or linking clauses with sy, fa or satria"))
		}
	}
	return analyses, out
}

func analyzeSentence(span utils.Span, tokens []utils.Token, g lexicon.Grammar) SentenceAnalysis {
	sa := SentenceAnalysis{
		Text:         span.Text,
		Offset:       span.Offset,
		WordCount:    len(tokens),
		VerbPosition: -1,
		Structure:    structureSimple,
	}
	for i, tok := range tokens {
		if sa.VerbPosition < 0 && isVerb(tok.Norm, g.VerbPrefixes) {
			sa.HasVerb = true
			sa.VerbPosition = i
		}
		if g.Conjunctions.Has(tok.Norm) {
			sa.Conjunctions = append(sa.Conjunctions, tok.Norm)
		}
		if g.Prepositions.Has(tok.Norm) {
			sa.Prepositions = append(sa.Prepositions, tok.Norm)
		}
	}
	sa.VSO = sa.VerbPosition == 0
	switch {
	case len(sa.Conjunctions) > 0:
		sa.Structure = structureComplex
	case sa.WordCount > compoundOver:
		sa.Structure = structureCompound
	}
	return sa
}

// isVerb treats a word as a verb when it carries a verbal prefix and at
// least two more letters.
func isVerb(word string, prefixes []string) bool {
	n := utils.RuneLen(word)
	for _, p := range prefixes {
		if len(word) >= len(p) && word[:len(p)] == p && n > utils.RuneLen(p)+1 {
			return true
		}
	}
	return false
}
