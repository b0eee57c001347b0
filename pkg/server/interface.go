/*
Package server implements msgpack IPC for the teny analyzers.

The server reads a stream of msgpack requests from stdin and writes one msgpack
response per request to stdout. Logs go to stderr so the stream stays clean.
Messages are processed synchronously with timing info included in responses.

# IPC

Every request has the same minimal shape: an id, an action, the input text and
an optional result limit.

	{"id": "req_001", "a": "suggest", "t": "tsra", "l": 3}

Word list actions (suggest, predict, complete) answer with ranked words:

	{"id": "req_001", "s": [{"w": "tsara", "r": 1}, {"w": "tsia", "r": 2}], "c": 2, "t": 41}

Other actions wrap their result under "r":

	{"id": "req_002", "a": "root", "t": "mahafantatra"}
	{"id": "req_002", "r": "fantatra", "t": 12}

Failures carry the request id, a message and an HTTP-like code:

	{"id": "req_003", "e": "unknown action: foo", "c": 400}

When the server starts it writes {"status": "ready"} before reading anything.

# Actions

	health     liveness, no text
	word       is the word correctly spelled
	suggest    spelling corrections
	root       lemma root
	decompose  prefix, root and suffix
	predict    next-word predictions
	complete   lexicon words starting with the text
	sentiment  polarity score
	check      full document report
	info       word info (gloss, lemma, suggestions)
	translate  glossary lookup mg<->fr
	stats      table and cache sizes, no text

Limits are clamped to server.max_limit. Texts longer than server.max_input bytes
are refused with code 413.
*/
package server

// Request is the single inbound message shape.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Text   string `msgpack:"t,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// Suggestion is one ranked word
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// WordsResponse answers suggest, predict and complete.
type WordsResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// WordResponse answers word.
type WordResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w"`
	Known     bool   `msgpack:"k"`
	TimeTaken int64  `msgpack:"t"`
}

// ResultResponse wraps any other action's result.
type ResultResponse[T any] struct {
	ID        string `msgpack:"id"`
	Result    T      `msgpack:"r"`
	TimeTaken int64  `msgpack:"t"`
}

// StatusResponse answers health and announces readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
