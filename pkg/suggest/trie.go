package suggest

import (
	"maps"
	"slices"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// DefaultMinPrefix is the shortest prefix Completer answers.
const DefaultMinPrefix = 2

// Completer finishes partial words from the lexicon, in lexicographic order.
type Completer struct {
	trie      *patricia.Trie
	minPrefix int
	words     int
	cache     resultCache
}

// NewCompleter indexes every lexicon word in a patricia trie.
func NewCompleter(lex *lexicon.Lexicon, minPrefix int) *Completer {
	if minPrefix <= 0 {
		minPrefix = DefaultMinPrefix
	}
	c := &Completer{
		trie:      patricia.NewTrie(),
		minPrefix: minPrefix,
	}
	lex.Words().Range(func(w string) bool {
		if c.trie.Insert(patricia.Prefix(w), utils.RuneLen(w)) {
			c.words++
		}
		return true
	})
	log.Debugf("Completer indexed %d words", c.words)
	return c
}

// Complete returns words that extend prefix, excluding prefix itself.
// limit <= 0 keeps all matches.
func (c *Completer) Complete(prefix string, limit int) []string {
	prefix = utils.Normalize(prefix)
	if utils.RuneLen(prefix) < c.minPrefix {
		return nil
	}
	if limit < 0 {
		limit = 0
	}
	if words, _, ok := c.cache.load(prefix, limit); ok {
		return words
	}

	words := SearchTrie(c.trie, prefix)
	slices.Sort(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	c.cache.store(prefix, limit, words, TierNone)
	return words
}

// SearchTrie collects every key below prefix except prefix itself.
func SearchTrie(trie *patricia.Trie, prefix string) []string {
	if trie == nil {
		return nil
	}
	var words []string
	err := trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		if word := string(p); word != prefix {
			words = append(words, word)
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return words
}

// Stats returns statistics about the indexed words
func (c *Completer) Stats() map[string]int {
	stats := map[string]int{"indexedWords": c.words}
	maps.Copy(stats, c.cache.stats("complete"))
	return stats
}
