// Package sentiment scores text polarity by counting lexicon words.
package sentiment

import (
	"encoding"
	"fmt"
	"math"
	"strings"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/lexicon"
)

// Label is the polarity class of a text.
type Label int

const (
	Neutral Label = iota
	Positive
	Negative
)

var (
	_ encoding.TextMarshaler   = Label(0)
	_ encoding.TextUnmarshaler = (*Label)(nil)
)

func (l Label) String() string {
	switch l {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

// MarshalText encodes the label by name; JSON and msgpack both go through it.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Label) UnmarshalText(text []byte) error {
	switch string(text) {
	case "positive":
		*l = Positive
	case "negative":
		*l = Negative
	case "neutral", "":
		*l = Neutral
	default:
		return fmt.Errorf("sentiment: unknown label %q", text)
	}
	return nil
}

const (
	positiveAbove = 60
	negativeBelow = 40
	neutralScore  = 50
)

// Result is the outcome of Analyze. Word lists are distinct and in order of
// first appearance; counts include repeats.
type Result struct {
	Label         Label    `json:"label" msgpack:"label"`
	Score         int      `json:"score" msgpack:"score"`
	PositiveWords []string `json:"positive_words" msgpack:"pos"`
	NegativeWords []string `json:"negative_words" msgpack:"neg"`
	PositiveCount int      `json:"positive_count" msgpack:"pc"`
	NegativeCount int      `json:"negative_count" msgpack:"nc"`
}

// Scorer runs Analyze against one lexicon.
type Scorer struct {
	polarity *lexicon.Polarity
}

func New(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{polarity: lex.Polarity()}
}

// Analyze counts positive and negative tokens of text. A token that sits in
// both lists counts on both sides.
func (s *Scorer) Analyze(text string) Result {
	res := Result{Label: Neutral, Score: neutralScore}
	seenPos := make(map[string]bool)
	seenNeg := make(map[string]bool)

	for _, field := range strings.Fields(text) {
		word := utils.Normalize(field)
		if word == "" {
			continue
		}
		if s.polarity.IsPositive(word) {
			res.PositiveCount++
			if !seenPos[word] {
				seenPos[word] = true
				res.PositiveWords = append(res.PositiveWords, word)
			}
		}
		if s.polarity.IsNegative(word) {
			res.NegativeCount++
			if !seenNeg[word] {
				seenNeg[word] = true
				res.NegativeWords = append(res.NegativeWords, word)
			}
		}
	}

	total := res.PositiveCount + res.NegativeCount
	if total == 0 {
		return res
	}
	res.Score = int(math.Round(100 * float64(res.PositiveCount) / float64(total)))
	switch {
	case res.Score > positiveAbove:
		res.Label = Positive
	case res.Score < negativeBelow:
		res.Label = Negative
	}
	return res
}
