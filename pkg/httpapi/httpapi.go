// Package httpapi exposes an engine.Service as a JSON REST API.
//
// Endpoints:
//
//	POST /api/check          body: {"text":"..."}
//	POST /api/word-info      body: {"word":"..."}
//	GET  /api/word?w=<word>
//	GET  /api/suggest?w=<word>[&limit=n]
//	GET  /api/autocomplete?prefix=<p>[&limit=n]
//	GET  /api/predict?token=<t>[&limit=n]
//	POST /api/lemmatize      body: {"text":"..."}
//	GET  /api/decompose?w=<word>
//	POST /api/sentiment      body: {"text":"..."}
//	POST /api/translate      body: {"text":"..."}
//	GET  /api/stats
//	GET  /health
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/teny/internal/logger"
	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/config"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/bastiangx/teny/pkg/morph"
	"github.com/charmbracelet/log"
	"github.com/rs/cors"
)

// ---- JSON response types ------------------------------------------------

type wordResponse struct {
	Word  string `json:"word"`
	Known bool   `json:"known"`
}

type suggestResponse struct {
	Word        string   `json:"word"`
	Suggestions []string `json:"suggestions"`
}

type autocompleteResponse struct {
	Prefix      string   `json:"prefix"`
	Completions []string `json:"completions"`
}

type predictResponse struct {
	Token       string   `json:"token"`
	Predictions []string `json:"predictions"`
}

type tokenLemma struct {
	Token  string      `json:"token"`
	Offset int         `json:"offset"`
	Lemma  morph.Lemma `json:"lemma"`
}

type lemmatizeResponse struct {
	Results []tokenLemma `json:"results"`
}

type decomposeResponse struct {
	Word          string              `json:"word"`
	Decomposition morph.Decomposition `json:"decomposition"`
}

type translateResponse struct {
	Text        string               `json:"text"`
	Translation string               `json:"translation"`
	Words       []engine.Translation `json:"words"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// api carries what every handler needs.
type api struct {
	svc engine.Service
	cfg *config.Config
}

// limit reads the optional limit query parameter.
func (a *api) limit(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return utils.ClampLimit(0, def, a.cfg.Server.MaxLimit), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid 'limit' query parameter %q", raw)
	}
	return utils.ClampLimit(n, def, a.cfg.Server.MaxLimit), nil
}

// bodySlack leaves room for the JSON envelope around a max_input sized field.
const bodySlack = 4096

// decodeField reads a JSON body and returns its non-empty string field.
// It writes the error response itself and reports false on failure.
func (a *api) decodeField(w http.ResponseWriter, r *http.Request, field string) (string, bool) {
	maxInput := a.cfg.Server.MaxInput
	if maxInput > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, int64(maxInput)+bodySlack)
	}
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return "", false
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("body must be JSON with a non-empty '%s' field", field))
		return "", false
	}
	value, _ := body[field].(string)
	if strings.TrimSpace(value) == "" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("body must be JSON with a non-empty '%s' field", field))
		return "", false
	}
	if maxInput > 0 && len(value) > maxInput {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("'%s' exceeds maximum length of %d bytes", field, maxInput))
		return "", false
	}
	return value, true
}

// query returns a required query parameter, writing a 400 when it is missing.
func query(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("missing '%s' query parameter", name))
		return "", false
	}
	return value, true
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		writeError(w, http.StatusMethodNotAllowed, method+" required")
		return false
	}
	return true
}

// ---- handlers -----------------------------------------------------------

func (a *api) handleCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		text, ok := a.decodeField(w, r, "text")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, a.svc.CheckDocument(text))
	}
}

func (a *api) handleWordInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		word, ok := a.decodeField(w, r, "word")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, a.svc.WordInfo(word))
	}
}

func (a *api) handleWord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		word, ok := query(w, r, "w")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, wordResponse{Word: word, Known: a.svc.CheckWord(word)})
	}
}

func (a *api) handleSuggest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		word, ok := query(w, r, "w")
		if !ok {
			return
		}
		limit, err := a.limit(r, a.cfg.Spell.DefaultLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, suggestResponse{
			Word:        word,
			Suggestions: nonNil(a.svc.SuggestCorrections(word, limit)),
		})
	}
}

func (a *api) handleAutocomplete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		prefix, ok := query(w, r, "prefix")
		if !ok {
			return
		}
		limit, err := a.limit(r, a.cfg.Complete.DefaultLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, autocompleteResponse{
			Prefix:      prefix,
			Completions: nonNil(a.svc.Complete(prefix, limit)),
		})
	}
}

func (a *api) handlePredict() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		token, ok := query(w, r, "token")
		if !ok {
			return
		}
		limit, err := a.limit(r, a.cfg.Complete.DefaultLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, predictResponse{
			Token:       token,
			Predictions: nonNil(a.svc.PredictCompletions(token, limit)),
		})
	}
}

func (a *api) handleLemmatize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		text, ok := a.decodeField(w, r, "text")
		if !ok {
			return
		}
		tokens := utils.Tokenize(text)
		out := make([]tokenLemma, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, tokenLemma{
				Token:  tok.Text,
				Offset: tok.Offset,
				Lemma:  a.svc.Lemmatize(tok.Text),
			})
		}
		writeJSON(w, http.StatusOK, lemmatizeResponse{Results: out})
	}
}

func (a *api) handleDecompose() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		word, ok := query(w, r, "w")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, decomposeResponse{Word: word, Decomposition: a.svc.Decompose(word)})
	}
}

func (a *api) handleSentiment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		text, ok := a.decodeField(w, r, "text")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, a.svc.AnalyzeSentiment(text))
	}
}

// handleTranslate translates word by word; words without a gloss are kept as written.
func (a *api) handleTranslate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		text, ok := a.decodeField(w, r, "text")
		if !ok {
			return
		}
		tokens := utils.Tokenize(text)
		words := make([]engine.Translation, 0, len(tokens))
		parts := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			tr := a.svc.Translate(tok.Text)
			words = append(words, tr)
			if tr.Found {
				parts = append(parts, tr.Translation)
			} else {
				parts = append(parts, tok.Text)
			}
		}
		writeJSON(w, http.StatusOK, translateResponse{
			Text:        text,
			Translation: strings.Join(parts, " "),
			Words:       words,
		})
	}
}

func (a *api) handleStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		writeJSON(w, http.StatusOK, a.svc.Stats())
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func nonNil(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}

// ---- wiring -------------------------------------------------------------

// New returns the API handler with CORS applied for cfg.HTTP.AllowedOrigins.
func New(svc engine.Service, cfg *config.Config) http.Handler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := &api{svc: svc, cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/check", a.handleCheck())
	mux.HandleFunc("/api/word-info", a.handleWordInfo())
	mux.HandleFunc("/api/word", a.handleWord())
	mux.HandleFunc("/api/suggest", a.handleSuggest())
	mux.HandleFunc("/api/autocomplete", a.handleAutocomplete())
	mux.HandleFunc("/api/predict", a.handlePredict())
	mux.HandleFunc("/api/lemmatize", a.handleLemmatize())
	mux.HandleFunc("/api/decompose", a.handleDecompose())
	mux.HandleFunc("/api/sentiment", a.handleSentiment())
	mux.HandleFunc("/api/translate", a.handleTranslate())
	mux.HandleFunc("/api/stats", a.handleStats())
	mux.HandleFunc("/health", handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(logRequests(mux))
}

// logRequests logs each request at debug level with its duration.
func logRequests(next http.Handler) http.Handler {
	l := logger.New("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		l.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("httpapi: shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
