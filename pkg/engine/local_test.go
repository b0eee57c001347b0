package engine

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/bastiangx/teny/pkg/morph"
	"github.com/bastiangx/teny/pkg/sentiment"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newLocal(t testing.TB) *Local {
	t.Helper()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	return NewLocal(lex, DefaultOptions())
}

func TestEngineContract(t *testing.T) {
	var eng Engine = newLocal(t)

	assert.True(t, eng.CheckWord("dia"))
	assert.False(t, eng.CheckWord("xkqz"))
	assert.Contains(t, eng.SuggestCorrections("tsra", 5), "tsara")
	assert.Equal(t, "fantatra", eng.FindRoot("mahafantatra"))
	assert.Equal(t, morph.Decomposition{Prefix: "fan", Root: "asa", Suffix: "na"}, eng.Decompose("fanasana"))
	assert.Equal(t, []string{"mandeha", "miasa"}, eng.PredictCompletions("dia", 2))

	res := eng.AnalyzeSentiment("tsara tsara ratsy")
	assert.Equal(t, 2, res.PositiveCount)
	assert.Equal(t, 1, res.NegativeCount)
	assert.Equal(t, 67, res.Score)
	assert.Equal(t, sentiment.Positive, res.Label)

	report := eng.CheckDocument("Mandeha any an-tsena aho.")
	assert.GreaterOrEqual(t, report.Score.Score, 0)
	assert.LessOrEqual(t, report.Score.Score, 100)
}

func TestEmptyInputsAreNeutral(t *testing.T) {
	eng := newLocal(t)
	assert.False(t, eng.CheckWord(""))
	assert.Empty(t, eng.SuggestCorrections("", 5))
	assert.Equal(t, "", eng.FindRoot(""))
	assert.Equal(t, morph.Decomposition{}, eng.Decompose(""))
	assert.Empty(t, eng.PredictCompletions("", 5))
	assert.Equal(t, 50, eng.AnalyzeSentiment("").Score)
	assert.Empty(t, eng.CheckDocument("").Suggestions)
}

func TestWordInfo(t *testing.T) {
	eng := newLocal(t)

	info := eng.WordInfo("Tsara!")
	assert.Equal(t, "tsara", info.Word)
	assert.True(t, info.Exists)
	assert.Equal(t, "bien/bon", info.Definition)
	assert.Equal(t, "positive", info.Sentiment)
	assert.Empty(t, info.Suggestions)

	info = eng.WordInfo("trno")
	assert.False(t, info.Exists)
	assert.False(t, info.Known)
	assert.Contains(t, info.Suggestions, "trano")

	info = eng.WordInfo("mahita")
	assert.True(t, info.Lemma.Exception)
	assert.Equal(t, "hita", info.Lemma.Root)
}

func TestTranslate(t *testing.T) {
	eng := newLocal(t)
	testCases := []struct {
		input     string
		want      string
		direction string
		found     bool
	}{
		{"Trano", "maison", "mg-fr", true},
		{"maison", "trano", "fr-mg", true},
		{"au revoir", "veloma", "fr-mg", true},
		{"madagascar", "madagasikara", "fr-mg", true},
		{"voiture", "", "", false},
	}
	for _, tc := range testCases {
		tr := eng.Translate(tc.input)
		assert.Equal(t, tc.want, tr.Translation, tc.input)
		assert.Equal(t, tc.direction, tr.Direction, tc.input)
		assert.Equal(t, tc.found, tr.Found, tc.input)
	}
}

func TestStats(t *testing.T) {
	eng := newLocal(t)
	eng.SuggestCorrections("tsra", 3)
	stats := eng.Stats()
	assert.Greater(t, stats["words"], 100)
	assert.Equal(t, 1, stats["suggestCache"])
	assert.Equal(t, stats["words"], stats["indexedWords"])
}

// Concurrent document checks share caches; run with -race.
func TestLocalConcurrent(t *testing.T) {
	eng := newLocal(t)
	texts := []string{
		"Manao ahoana ianao? Tsara be aho.",
		"Ny zanaka mandeha any tsena.",
		"Manbady ny trno!",
		"misaotra betsaka tompoko",
	}
	workers := []int{1, 2, 4, 8}
	for _, n := range workers {
		t.Run(fmt.Sprintf("workers_%d", n), func(t *testing.T) {
			var wg sync.WaitGroup
			for w := 0; w < n; w++ {
				wg.Add(1)
				go func(id int) {
					defer wg.Done()
					for i := 0; i < 100/n; i++ {
						text := texts[(id+i)%len(texts)]
						report := eng.CheckDocument(text)
						if report.Score.Score < 0 || report.Score.Score > 100 {
							t.Errorf("score out of range: %d", report.Score.Score)
						}
						eng.PredictCompletions(text[:3], 3)
						eng.Complete(text[:2], 3)
					}
				}(w)
			}
			wg.Wait()
		})
	}
}
