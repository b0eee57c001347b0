package lexicon

import (
	"cmp"
	"slices"
	"strings"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// CompletionIndex holds the next-word tables: bigram triggers, common
// phrases and prefix classes. Candidate order is preserved from the source.
type CompletionIndex struct {
	bigrams    map[string][]string
	phrases    []string
	phraseTrie *patricia.Trie
	classes    map[string][]string
	classKeys  []string
}

func newCompletionIndex(bigrams map[string][]string, phrases []string, classes map[string][]string) *CompletionIndex {
	idx := &CompletionIndex{
		bigrams:    make(map[string][]string, len(bigrams)),
		phraseTrie: patricia.NewTrie(),
		classes:    make(map[string][]string, len(classes)),
	}
	for trigger, next := range bigrams {
		if trigger = utils.Normalize(trigger); trigger != "" {
			idx.bigrams[trigger] = normalizeList(next)
		}
	}
	for _, phrase := range phrases {
		phrase = normalizePhrase(phrase)
		if phrase == "" {
			continue
		}
		// item is the table position; Insert refuses duplicates
		if idx.phraseTrie.Insert(patricia.Prefix(phrase), len(idx.phrases)) {
			idx.phrases = append(idx.phrases, phrase)
		}
	}
	for prefix, words := range classes {
		if prefix = utils.Normalize(prefix); prefix != "" {
			idx.classes[prefix] = normalizeList(words)
			idx.classKeys = append(idx.classKeys, prefix)
		}
	}
	idx.classKeys = longestFirst(idx.classKeys)
	return idx
}

func normalizeList(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = utils.Normalize(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func normalizePhrase(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// Bigram returns the candidates recorded after trigger.
func (idx *CompletionIndex) Bigram(trigger string) ([]string, bool) {
	next, ok := idx.bigrams[trigger]
	if !ok {
		return nil, false
	}
	return slices.Clone(next), true
}

// PhrasesWithPrefix returns the phrases starting with prefix in table order.
func (idx *CompletionIndex) PhrasesWithPrefix(prefix string) []string {
	type hit struct {
		pos    int
		phrase string
	}
	var hits []hit
	err := idx.phraseTrie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		hits = append(hits, hit{pos: item.(int), phrase: string(p)})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting phrase subtree: %v", err)
	}
	slices.SortFunc(hits, func(a, b hit) int { return cmp.Compare(a.pos, b.pos) })

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.phrase
	}
	return out
}

// PrefixClass returns the canned list of the longest class prefix token starts with.
func (idx *CompletionIndex) PrefixClass(token string) ([]string, bool) {
	key, ok := LongestPrefix(idx.classKeys, token)
	if !ok {
		return nil, false
	}
	return slices.Clone(idx.classes[key]), true
}

// Sizes reports the table sizes for stats output.
func (idx *CompletionIndex) Sizes() map[string]int {
	return map[string]int{
		"bigrams":       len(idx.bigrams),
		"phrases":       len(idx.phrases),
		"prefixClasses": len(idx.classes),
	}
}
