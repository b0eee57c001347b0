// Package spell checks Malagasy words against the lexicon and ranks corrections by edit distance.
package spell

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/hbollon/go-edlib"
)

const (
	DefaultMaxDistance = 2
	DefaultLimit       = 5
)

// Checker answers membership and correction queries. Safe for concurrent use.
type Checker struct {
	lex          *lexicon.Lexicon
	maxDistance  int
	defaultLimit int

	known       sync.Map // normalized word -> bool
	suggestions sync.Map // "word|limit" -> []string
}

// New creates a Checker over lex.
func New(lex *lexicon.Lexicon, opts ...Option) *Checker {
	c := &Checker{
		lex:          lex,
		maxDistance:  DefaultMaxDistance,
		defaultLimit: DefaultLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Distance is the unit-cost Levenshtein distance between a and b, counted in runes.
func Distance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// IsKnown reports whether word is in the lexicon or starts with a derivational prefix.
func (c *Checker) IsKnown(word string) bool {
	norm := utils.Normalize(word)
	if norm == "" {
		return false
	}
	if v, ok := c.known.Load(norm); ok {
		return v.(bool)
	}
	known := c.lex.Words().Has(norm)
	if !known {
		_, known = c.lex.DerivationalPrefix(norm)
	}
	c.known.Store(norm, known)
	return known
}

// InLexicon reports strict lexicon membership, without the prefix heuristic.
func (c *Checker) InLexicon(word string) bool {
	return c.lex.Words().Has(utils.Normalize(word))
}

// Suggest returns up to limit lexicon words within MaxDistance of word,
// closest first. Equal distances keep lexicographic order.
func (c *Checker) Suggest(word string, limit int) []string {
	norm := utils.Normalize(word)
	if norm == "" {
		return nil
	}
	if limit <= 0 {
		limit = c.defaultLimit
	}

	key := fmt.Sprintf("%s|%d", norm, limit)
	if cached, ok := c.suggestions.Load(key); ok {
		return slices.Clone(cached.([]string))
	}

	type candidate struct {
		word string
		dist int
	}
	var candidates []candidate
	c.lex.Words().Range(func(w string) bool {
		if d := Distance(norm, w); d <= c.maxDistance {
			candidates = append(candidates, candidate{word: w, dist: d})
		}
		return true
	})
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.dist, b.dist)
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]string, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.word
	}
	c.suggestions.Store(key, out)
	log.Debugf("spell: %d suggestions for %q", len(out), norm)
	return slices.Clone(out)
}

// MaxDistance returns the configured threshold.
func (c *Checker) MaxDistance() int { return c.maxDistance }

// Stats returns cache sizes.
func (c *Checker) Stats() map[string]int {
	return map[string]int{
		"knownCache":   syncMapLen(&c.known),
		"suggestCache": syncMapLen(&c.suggestions),
	}
}

func syncMapLen(m *sync.Map) int {
	n := 0
	m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
