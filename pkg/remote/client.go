// Package remote implements engine.Engine against a teny HTTP server.
//
// Every method is total like the local engine: transport and decoding
// failures are logged and collapse to empty or neutral results.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/teny/internal/logger"
	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/bastiangx/teny/pkg/morph"
	"github.com/bastiangx/teny/pkg/quality"
	"github.com/bastiangx/teny/pkg/sentiment"
	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds each call.
const DefaultTimeout = 10 * time.Second

// shared transport (keep-alive).
var transport = &http.Transport{
	MaxIdleConns:        32,
	MaxIdleConnsPerHost: 16,
}

// Client talks to one server.
type Client struct {
	base    string
	http    *http.Client
	timeout time.Duration
	log     *log.Logger
}

var _ engine.Engine = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the shared http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New returns a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base:    strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Transport: transport},
		timeout: DefaultTimeout,
		log:     logger.New("remote"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type wordResponse struct {
	Known bool `json:"known"`
}

type listResponse struct {
	Suggestions []string `json:"suggestions"`
	Predictions []string `json:"predictions"`
}

type lemmatizeResponse struct {
	Results []struct {
		Lemma morph.Lemma `json:"lemma"`
	} `json:"results"`
}

type decomposeResponse struct {
	Decomposition morph.Decomposition `json:"decomposition"`
}

func (c *Client) CheckWord(word string) bool {
	if utils.Normalize(word) == "" {
		return false
	}
	var out wordResponse
	c.get("/api/word", url.Values{"w": {word}}, &out)
	return out.Known
}

func (c *Client) SuggestCorrections(word string, limit int) []string {
	if utils.Normalize(word) == "" {
		return nil
	}
	var out listResponse
	c.get("/api/suggest", withLimit(url.Values{"w": {word}}, limit), &out)
	return out.Suggestions
}

func (c *Client) FindRoot(word string) string {
	if utils.Normalize(word) == "" {
		return ""
	}
	var out lemmatizeResponse
	if !c.post("/api/lemmatize", map[string]string{"text": word}, &out) || len(out.Results) == 0 {
		return utils.Normalize(word)
	}
	return out.Results[0].Lemma.Root
}

func (c *Client) Decompose(word string) morph.Decomposition {
	if utils.Normalize(word) == "" {
		return morph.Decomposition{}
	}
	var out decomposeResponse
	c.get("/api/decompose", url.Values{"w": {word}}, &out)
	return out.Decomposition
}

func (c *Client) PredictCompletions(token string, limit int) []string {
	if utils.Normalize(token) == "" {
		return nil
	}
	var out listResponse
	c.get("/api/predict", withLimit(url.Values{"token": {token}}, limit), &out)
	return out.Predictions
}

func (c *Client) AnalyzeSentiment(text string) sentiment.Result {
	neutral := sentiment.Result{Label: sentiment.Neutral, Score: 50}
	if strings.TrimSpace(text) == "" {
		return neutral
	}
	var out sentiment.Result
	if !c.post("/api/sentiment", map[string]string{"text": text}, &out) {
		return neutral
	}
	return out
}

// CheckDocument falls back to an empty report scored 100 when the server is unreachable.
func (c *Client) CheckDocument(text string) quality.Report {
	empty := quality.Report{
		Suggestions: []quality.Suggestion{},
		ByCategory:  map[quality.Category][]quality.Suggestion{},
		Score:       quality.ComputeScore(quality.Statistics{}),
		Sentiment:   c.AnalyzeSentiment(""),
	}
	if strings.TrimSpace(text) == "" {
		return empty
	}
	var out quality.Report
	if !c.post("/api/check", map[string]string{"text": text}, &out) {
		return empty
	}
	return out
}

func withLimit(v url.Values, limit int) url.Values {
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return v
}

func (c *Client) get(path string, params url.Values, out any) bool {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path+"?"+params.Encode(), nil)
	if err != nil {
		c.log.Errorf("building request for %s: %v", path, err)
		return false
	}
	return c.do(req, out)
}

func (c *Client) post(path string, body, out any) bool {
	data, err := json.Marshal(body)
	if err != nil {
		c.log.Errorf("encoding body for %s: %v", path, err)
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(data))
	if err != nil {
		c.log.Errorf("building request for %s: %v", path, err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do sends req and decodes a 200 JSON body into out.
func (c *Client) do(req *http.Request, out any) bool {
	if err := c.send(req, out); err != nil {
		c.log.Warnf("%s %s: %v", req.Method, req.URL.Path, err)
		return false
	}
	return true
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
