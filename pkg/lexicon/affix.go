package lexicon

import (
	"cmp"
	"slices"
	"strings"

	"github.com/bastiangx/teny/internal/utils"
)

// DefaultMinRootLength is the number of runes an affix strip must leave behind.
const DefaultMinRootLength = 3

// AffixTable holds prefix and suffix lists ordered longest-first.
// The order is fixed at build time; equal lengths fall back to lexicographic order.
type AffixTable struct {
	prefixes []string
	suffixes []string
	minRoot  int
}

func newAffixTable(prefixes, suffixes []string, minRoot int) *AffixTable {
	if minRoot <= 0 {
		minRoot = DefaultMinRootLength
	}
	return &AffixTable{
		prefixes: longestFirst(prefixes),
		suffixes: longestFirst(suffixes),
		minRoot:  minRoot,
	}
}

// longestFirst normalizes, dedups and sorts affixes by descending rune length.
func longestFirst(affixes []string) []string {
	seen := make(map[string]bool, len(affixes))
	out := make([]string, 0, len(affixes))
	for _, a := range affixes {
		a = utils.Normalize(a)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	slices.SortStableFunc(out, func(a, b string) int {
		if c := cmp.Compare(utils.RuneLen(b), utils.RuneLen(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return out
}

// MinRoot returns the minimum root length in runes.
func (t *AffixTable) MinRoot() int { return t.minRoot }

// Prefixes returns a copy of the prefix list in match order.
func (t *AffixTable) Prefixes() []string { return slices.Clone(t.prefixes) }

// Suffixes returns a copy of the suffix list in match order.
func (t *AffixTable) Suffixes() []string { return slices.Clone(t.suffixes) }

// MatchPrefix returns the first prefix, longest first, that word starts with
// and whose removal leaves at least MinRoot runes.
func (t *AffixTable) MatchPrefix(word string) (string, bool) {
	n := utils.RuneLen(word)
	for _, p := range t.prefixes {
		if strings.HasPrefix(word, p) && n-utils.RuneLen(p) >= t.minRoot {
			return p, true
		}
	}
	return "", false
}

// MatchSuffix is the suffix counterpart of MatchPrefix.
func (t *AffixTable) MatchSuffix(word string) (string, bool) {
	n := utils.RuneLen(word)
	for _, s := range t.suffixes {
		if strings.HasSuffix(word, s) && n-utils.RuneLen(s) >= t.minRoot {
			return s, true
		}
	}
	return "", false
}

// LongestPrefix returns the longest entry of prefixes that word starts with,
// with no root length requirement. prefixes must already be longest-first.
func LongestPrefix(prefixes []string, word string) (string, bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(word, p) {
			return p, true
		}
	}
	return "", false
}
