package engine

import (
	"maps"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/bastiangx/teny/pkg/morph"
	"github.com/bastiangx/teny/pkg/quality"
	"github.com/bastiangx/teny/pkg/sentiment"
	"github.com/bastiangx/teny/pkg/spell"
	"github.com/bastiangx/teny/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Options tunes the analyzers built by NewLocal. Zero fields take the
// package defaults of the analyzer they belong to.
type Options struct {
	MaxDistance      int
	SuggestLimit     int
	MinInput         int
	MinPrefix        int
	MinWordLength    int
	AlternativeLimit int
}

// DefaultOptions returns the stock settings.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      spell.DefaultMaxDistance,
		SuggestLimit:     spell.DefaultLimit,
		MinInput:         suggest.DefaultMinInput,
		MinPrefix:        suggest.DefaultMinPrefix,
		MinWordLength:    quality.DefaultMinWordLength,
		AlternativeLimit: quality.DefaultAlternativeLimit,
	}
}

// Local is the in-process Service.
type Local struct {
	lex        *lexicon.Lexicon
	speller    *spell.Checker
	lemmatizer *morph.Lemmatizer
	predictor  *suggest.Predictor
	completer  *suggest.Completer
	scorer     *sentiment.Scorer
	checker    *quality.Checker
}

var _ Service = (*Local)(nil)

// NewLocal builds every analyzer over lex.
func NewLocal(lex *lexicon.Lexicon, opts Options) *Local {
	spellOpts := []spell.Option{spell.WithDefaultLimit(opts.SuggestLimit)}
	if opts.MaxDistance > 0 {
		spellOpts = append(spellOpts, spell.WithMaxDistance(opts.MaxDistance))
	}
	speller := spell.New(lex, spellOpts...)
	lemmatizer := morph.New(lex)
	scorer := sentiment.New(lex)

	l := &Local{
		lex:        lex,
		speller:    speller,
		lemmatizer: lemmatizer,
		predictor:  suggest.NewPredictor(lex, suggest.Config{MinInput: opts.MinInput}),
		completer:  suggest.NewCompleter(lex, opts.MinPrefix),
		scorer:     scorer,
		checker: quality.New(lex, speller, lemmatizer, scorer, quality.Config{
			MinWordLength:    opts.MinWordLength,
			AlternativeLimit: opts.AlternativeLimit,
		}),
	}
	log.Debugf("Engine ready over %d words", lex.Words().Len())
	return l
}

func (l *Local) CheckWord(word string) bool {
	return l.speller.IsKnown(word)
}

func (l *Local) SuggestCorrections(word string, limit int) []string {
	return l.speller.Suggest(word, limit)
}

func (l *Local) FindRoot(word string) string {
	return l.lemmatizer.FindRoot(word)
}

// Lemmatize reports the root along with the affixes stripped to reach it.
func (l *Local) Lemmatize(word string) morph.Lemma {
	return l.lemmatizer.Lemmatize(word)
}

func (l *Local) Decompose(word string) morph.Decomposition {
	return l.lemmatizer.Decompose(word)
}

func (l *Local) PredictCompletions(token string, limit int) []string {
	return l.predictor.Predict(token, limit)
}

func (l *Local) AnalyzeSentiment(text string) sentiment.Result {
	return l.scorer.Analyze(text)
}

func (l *Local) CheckDocument(text string) quality.Report {
	return l.checker.Check(text)
}

// Complete finishes a partial word from the lexicon.
func (l *Local) Complete(prefix string, limit int) []string {
	return l.completer.Complete(prefix, limit)
}

// WordInfo reports lexicon membership, gloss, lemma and, for unlisted
// words, spelling alternatives.
func (l *Local) WordInfo(word string) WordInfo {
	norm := utils.Normalize(word)
	info := WordInfo{Word: norm}
	if norm == "" {
		return info
	}
	info.Exists = l.speller.InLexicon(norm)
	info.Known = l.speller.IsKnown(norm)
	info.Definition, _ = l.lex.Glossary().Define(norm)
	info.Lemma = l.lemmatizer.Lemmatize(norm)
	if !info.Exists {
		info.Suggestions = l.speller.Suggest(norm, 0)
	}
	switch pol := l.lex.Polarity(); {
	case pol.IsPositive(norm) && pol.IsNegative(norm):
		info.Sentiment = "mixed"
	case pol.IsPositive(norm):
		info.Sentiment = sentiment.Positive.String()
	case pol.IsNegative(norm):
		info.Sentiment = sentiment.Negative.String()
	}
	return info
}

// Translate looks word up in the glossary, Malagasy to French first.
func (l *Local) Translate(word string) Translation {
	norm := utils.Normalize(word)
	tr := Translation{Word: norm}
	if def, ok := l.lex.Glossary().Define(norm); ok {
		tr.Translation, tr.Direction, tr.Found = def, "mg-fr", true
		return tr
	}
	if mg, ok := l.lex.Glossary().Reverse(norm); ok {
		tr.Translation, tr.Direction, tr.Found = mg, "fr-mg", true
	}
	return tr
}

// Stats merges lexicon sizes with analyzer cache counters.
func (l *Local) Stats() map[string]int {
	stats := l.lex.Stats()
	maps.Copy(stats, l.speller.Stats())
	for _, c := range []suggest.ICompleter{l.predictor, l.completer} {
		maps.Copy(stats, c.Stats())
	}
	return stats
}
