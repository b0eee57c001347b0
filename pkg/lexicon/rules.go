package lexicon

import (
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/bastiangx/teny/internal/utils"
)

// ForbiddenPattern is a letter sequence that cannot occur in a Malagasy word.
type ForbiddenPattern struct {
	Pattern string `yaml:"pattern"`
	Hint    string `yaml:"hint"`
}

// Rules are the orthographic and phonotactic checks run on every token.
type Rules struct {
	Forbidden       []ForbiddenPattern
	InitialClusters []string
	RareLetters     string
	// Foreign maps a function word of another language to that language name.
	Foreign map[string]string
}

func (r Rules) clone() Rules {
	return Rules{
		Forbidden:       slices.Clone(r.Forbidden),
		InitialClusters: slices.Clone(r.InitialClusters),
		RareLetters:     r.RareLetters,
		Foreign:         maps.Clone(r.Foreign),
	}
}

// Grammar holds the closed word classes used by sentence analysis.
type Grammar struct {
	VerbPrefixes []string
	Conjunctions *WordSet
	Prepositions *WordSet
}

// Glossary is a small bilingual word list, Malagasy to French and back.
type Glossary struct {
	forward map[string]string
	reverse map[string]string
}

// newGlossary builds the reverse side by splitting definitions on '/'.
// Malagasy keys are visited in sorted order and the first claim on a French word wins.
func newGlossary(src map[string]string) *Glossary {
	g := &Glossary{
		forward: make(map[string]string, len(src)),
		reverse: make(map[string]string, len(src)),
	}
	keys := make([]string, 0, len(src))
	for mg := range src {
		keys = append(keys, mg)
	}
	sort.Strings(keys)
	for _, mg := range keys {
		def := strings.TrimSpace(src[mg])
		mg = utils.Normalize(mg)
		if mg == "" || def == "" {
			continue
		}
		g.forward[mg] = def
		for _, fr := range strings.Split(def, "/") {
			fr = strings.ToLower(strings.TrimSpace(fr))
			if _, taken := g.reverse[fr]; fr != "" && !taken {
				g.reverse[fr] = mg
			}
		}
	}
	return g
}

// Define returns the French gloss of a Malagasy word.
func (g *Glossary) Define(word string) (string, bool) {
	def, ok := g.forward[word]
	return def, ok
}

// Reverse returns the Malagasy word glossed by a French word.
func (g *Glossary) Reverse(word string) (string, bool) {
	mg, ok := g.reverse[word]
	return mg, ok
}

func (g *Glossary) Len() int { return len(g.forward) }
