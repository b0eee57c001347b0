package server

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/teny/pkg/config"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/bastiangx/teny/pkg/morph"
	"github.com/bastiangx/teny/pkg/quality"
	"github.com/bastiangx/teny/pkg/sentiment"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.FatalLevel)
}

func newService(t *testing.T) engine.Service {
	t.Helper()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	return engine.NewLocal(lex, engine.DefaultOptions())
}

// session encodes reqs, runs the server to EOF and returns a decoder
// positioned after the ready message.
func session(t *testing.T, cfg *config.Config, reqs ...Request) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}

	srv := NewServerWithIO(newService(t), cfg, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
	return dec
}

func TestServerActions(t *testing.T) {
	dec := session(t, nil,
		Request{ID: "1", Action: "health"},
		Request{ID: "2", Action: "word", Text: "dia"},
		Request{ID: "3", Action: "suggest", Text: "tsra", Limit: 2},
		Request{ID: "4", Action: "root", Text: "mahafantatra"},
		Request{ID: "5", Action: "decompose", Text: "fanasana"},
		Request{ID: "6", Action: "sentiment", Text: "tsara tsara ratsy"},
		Request{ID: "7", Action: "check", Text: "Mandeha any an-tsena aho."},
		Request{ID: "8", Action: "translate", Text: "trano"},
		Request{ID: "9", Action: "stats"},
	)

	var health StatusResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, StatusResponse{ID: "1", Status: "ok"}, health)

	var word WordResponse
	require.NoError(t, dec.Decode(&word))
	assert.Equal(t, "2", word.ID)
	assert.True(t, word.Known)

	var words WordsResponse
	require.NoError(t, dec.Decode(&words))
	assert.Equal(t, "3", words.ID)
	require.NotEmpty(t, words.Suggestions)
	assert.LessOrEqual(t, words.Count, 2)
	assert.Equal(t, Suggestion{Word: "tsara", Rank: 1}, words.Suggestions[0])

	var root ResultResponse[string]
	require.NoError(t, dec.Decode(&root))
	assert.Equal(t, "fantatra", root.Result)

	var parts ResultResponse[morph.Decomposition]
	require.NoError(t, dec.Decode(&parts))
	assert.Equal(t, morph.Decomposition{Prefix: "fan", Root: "asa", Suffix: "na"}, parts.Result)

	var senti ResultResponse[sentiment.Result]
	require.NoError(t, dec.Decode(&senti))
	assert.Equal(t, 67, senti.Result.Score)
	assert.Equal(t, sentiment.Positive, senti.Result.Label)

	var report ResultResponse[quality.Report]
	require.NoError(t, dec.Decode(&report))
	assert.Equal(t, "7", report.ID)
	assert.GreaterOrEqual(t, report.Result.Score.Score, 0)
	assert.LessOrEqual(t, report.Result.Score.Score, 100)

	var tr ResultResponse[engine.Translation]
	require.NoError(t, dec.Decode(&tr))
	assert.Equal(t, "maison", tr.Result.Translation)

	var stats ResultResponse[map[string]int]
	require.NoError(t, dec.Decode(&stats))
	assert.Greater(t, stats.Result["words"], 0)
}

func TestServerClampsLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxLimit = 3
	dec := session(t, cfg, Request{ID: "c", Action: "complete", Text: "ma", Limit: 1000})

	var words WordsResponse
	require.NoError(t, dec.Decode(&words))
	assert.Equal(t, 3, words.Count)
	for i, s := range words.Suggestions {
		assert.Equal(t, uint16(i+1), s.Rank)
		assert.True(t, strings.HasPrefix(s.Word, "ma"), s.Word)
	}
}

func TestServerErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxInput = 10
	dec := session(t, cfg,
		Request{ID: "big", Action: "check", Text: "mandeha aho izao"},
		Request{ID: "unknown", Action: "dance", Text: "dia"},
		Request{ID: "empty", Action: "suggest"},
	)

	testCases := []struct {
		id   string
		code int
	}{
		{"big", 413},
		{"unknown", 400},
		{"empty", 400},
	}
	for _, tc := range testCases {
		var resp ErrorResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Equal(t, tc.id, resp.ID)
		assert.Equal(t, tc.code, resp.Code)
		assert.NotEmpty(t, resp.Error)
	}
}

func TestServerMalformedInput(t *testing.T) {
	var in, out bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&in).Encode("not a request"))

	srv := NewServerWithIO(newService(t), nil, &in, &out)
	assert.Error(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 400, resp.Code)
}
