package remote

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bastiangx/teny/pkg/engine"
	"github.com/bastiangx/teny/pkg/httpapi"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/bastiangx/teny/pkg/sentiment"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.FatalLevel)
}

func newPair(t *testing.T) (*engine.Local, *Client) {
	t.Helper()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	local := engine.NewLocal(lex, engine.DefaultOptions())
	srv := httptest.NewServer(httpapi.New(local, nil))
	t.Cleanup(srv.Close)
	return local, New(srv.URL+"/", WithTimeout(2*time.Second))
}

func TestClientMatchesLocal(t *testing.T) {
	local, client := newPair(t)

	for _, w := range []string{"dia", "xkqz", "Tsara!"} {
		assert.Equal(t, local.CheckWord(w), client.CheckWord(w), w)
	}
	assert.Equal(t, local.SuggestCorrections("tsra", 3), client.SuggestCorrections("tsra", 3))
	for _, w := range []string{"mahafantatra", "mahita", "fanasana", "dia"} {
		assert.Equal(t, local.FindRoot(w), client.FindRoot(w), w)
		assert.Equal(t, local.Decompose(w), client.Decompose(w), w)
	}
	assert.Equal(t, local.PredictCompletions("dia", 2), client.PredictCompletions("dia", 2))
	assert.Equal(t, local.AnalyzeSentiment("tsara tsara ratsy"), client.AnalyzeSentiment("tsara tsara ratsy"))

	text := "Manbady ny trno. Tsara be ity trano ity."
	want, got := local.CheckDocument(text), client.CheckDocument(text)
	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.Statistics, got.Statistics)
	assert.Equal(t, want.Suggestions, got.Suggestions)
}

func TestClientEmptyInputSkipsNetwork(t *testing.T) {
	client := New("http://127.0.0.1:1")
	assert.False(t, client.CheckWord(""))
	assert.Nil(t, client.SuggestCorrections("  ", 5))
	assert.Equal(t, "", client.FindRoot(""))
	assert.Equal(t, 50, client.AnalyzeSentiment("").Score)
	assert.Equal(t, 100, client.CheckDocument("").Score.Score)
}

func TestClientUnreachableServerIsNeutral(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	client := New(url, WithTimeout(500*time.Millisecond))
	assert.False(t, client.CheckWord("dia"))
	assert.Empty(t, client.SuggestCorrections("tsra", 3))
	assert.Equal(t, "mahafantatra", client.FindRoot("Mahafantatra"))
	assert.Empty(t, client.PredictCompletions("dia", 3))

	res := client.AnalyzeSentiment("tsara")
	assert.Equal(t, sentiment.Neutral, res.Label)
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, 100, client.CheckDocument("tsara").Score.Score)
}
