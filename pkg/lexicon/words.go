package lexicon

import (
	"slices"

	"github.com/bastiangx/teny/internal/utils"
)

// WordSet is an immutable set of normalized words.
// It keeps a sorted copy so iteration order never depends on map order.
type WordSet struct {
	set    map[string]struct{}
	sorted []string
}

func newWordSet(words []string) *WordSet {
	ws := &WordSet{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = utils.Normalize(w)
		if w == "" {
			continue
		}
		if _, dup := ws.set[w]; dup {
			continue
		}
		ws.set[w] = struct{}{}
		ws.sorted = append(ws.sorted, w)
	}
	slices.Sort(ws.sorted)
	return ws
}

// Has reports membership of an already normalized word.
func (ws *WordSet) Has(word string) bool {
	if ws == nil {
		return false
	}
	_, ok := ws.set[word]
	return ok
}

// Len returns the number of words.
func (ws *WordSet) Len() int {
	if ws == nil {
		return 0
	}
	return len(ws.sorted)
}

// Range calls fn for each word in lexicographic order until fn returns false.
func (ws *WordSet) Range(fn func(word string) bool) {
	if ws == nil {
		return
	}
	for _, w := range ws.sorted {
		if !fn(w) {
			return
		}
	}
}

// Words returns a sorted copy of the set.
func (ws *WordSet) Words() []string {
	if ws == nil {
		return nil
	}
	return slices.Clone(ws.sorted)
}
