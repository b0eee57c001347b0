// Package suggest predicts the next word from canned tables and completes
// partial words from the lexicon trie.
package suggest

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns up to limit words for input, best first
	Complete(input string, limit int) []string

	// Stats returns statistics about the loaded tables and caches
	Stats() map[string]int
}

var (
	_ ICompleter = (*Predictor)(nil)
	_ ICompleter = (*Completer)(nil)
)

// Tier names the table a prediction came from.
type Tier int

const (
	TierNone Tier = iota
	TierBigram
	TierPhrase
	TierPrefixClass
)

func (t Tier) String() string {
	switch t {
	case TierBigram:
		return "bigram"
	case TierPhrase:
		return "phrase"
	case TierPrefixClass:
		return "prefix-class"
	default:
		return "none"
	}
}
