package suggest

import (
	"maps"
	"strings"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/charmbracelet/log"
)

// DefaultMinInput is the shortest input, in runes, that gets predictions.
const DefaultMinInput = 3

// Config holds predictor options.
type Config struct {
	MinInput int
}

// Predictor proposes the next word from the bigram, phrase and prefix-class
// tables. The first table with a hit wins; tiers are never merged.
type Predictor struct {
	index    *lexicon.CompletionIndex
	minInput int
	cache    resultCache
}

// NewPredictor creates a Predictor over the completion tables of lex.
func NewPredictor(lex *lexicon.Lexicon, cfg Config) *Predictor {
	if cfg.MinInput <= 0 {
		cfg.MinInput = DefaultMinInput
	}
	return &Predictor{
		index:    lex.Completion(),
		minInput: cfg.MinInput,
	}
}

// Predict returns up to limit distinct candidates for token. limit <= 0 keeps all.
func (p *Predictor) Predict(token string, limit int) []string {
	words, _ := p.PredictTier(token, limit)
	return words
}

// Complete makes Predictor usable as an ICompleter.
func (p *Predictor) Complete(input string, limit int) []string {
	return p.Predict(input, limit)
}

// PredictTier is Predict that also reports which table answered.
func (p *Predictor) PredictTier(token string, limit int) ([]string, Tier) {
	input := normalizeInput(token)
	if utils.RuneLen(input) < p.minInput {
		return nil, TierNone
	}
	if limit < 0 {
		limit = 0
	}
	if words, tier, ok := p.cache.load(input, limit); ok {
		return words, tier
	}

	candidates, tier := p.lookup(input)
	filter := utils.NewSuggestionFilter(limit)
	for _, w := range candidates {
		if !filter.Add(w) {
			break
		}
	}
	words := filter.Words()

	p.cache.store(input, limit, words, tier)
	log.Debugf("predict: %q -> %d candidates (%s)", input, len(words), tier)
	return words, tier
}

func (p *Predictor) lookup(input string) ([]string, Tier) {
	if next, ok := p.index.Bigram(input); ok && len(next) > 0 {
		return next, TierBigram
	}
	if next := p.phraseContinuations(input); len(next) > 0 {
		return next, TierPhrase
	}
	if class, ok := p.index.PrefixClass(input); ok && len(class) > 0 {
		return class, TierPrefixClass
	}
	return nil, TierNone
}

// phraseContinuations returns, for every phrase starting with input, the
// token right after the one the input ends in.
func (p *Predictor) phraseContinuations(input string) []string {
	at := len(strings.Fields(input))
	var next []string
	for _, phrase := range p.index.PhrasesWithPrefix(input) {
		tokens := strings.Fields(phrase)
		if at < len(tokens) {
			next = append(next, tokens[at])
		}
	}
	return next
}

// Stats returns table sizes and cache counters.
func (p *Predictor) Stats() map[string]int {
	stats := p.index.Sizes()
	maps.Copy(stats, p.cache.stats("predict"))
	return stats
}

// normalizeInput lowercases, trims edge punctuation and collapses inner whitespace.
func normalizeInput(s string) string {
	return utils.Normalize(strings.Join(strings.Fields(s), " "))
}
