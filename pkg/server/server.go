package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/teny/internal/logger"
	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/config"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the msgpack IPC for one Service.
type Server struct {
	svc      engine.Service
	cfg      *config.Config
	decoder  *msgpack.Decoder
	writer   *bufio.Writer
	encoder  *msgpack.Encoder
	log      *log.Logger
	requests int
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(svc engine.Service, cfg *config.Config) *Server {
	return NewServerWithIO(svc, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams.
func NewServerWithIO(svc engine.Service, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		svc:     svc,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  bw,
		encoder: msgpack.NewEncoder(bw),
		log:     logger.New("ipc"),
	}
}

// Start announces readiness and serves requests until the input closes.
// A malformed message ends the loop since the stream can no longer be framed.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("server: decode request: %w", err)
		}
		s.requests++
		s.handleRequest(req)
	}
}

// handleRequest validates req and dispatches on its action.
func (s *Server) handleRequest(req Request) {
	if maxInput := s.cfg.Server.MaxInput; maxInput > 0 && len(req.Text) > maxInput {
		s.sendError(req.ID, fmt.Sprintf("text exceeds maximum length of %d bytes", maxInput), 413)
		return
	}
	needsText, known := actions[req.Action]
	if !known {
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
		return
	}
	if needsText && req.Text == "" {
		s.sendError(req.ID, "missing 't' field", 400)
		return
	}

	start := time.Now()
	switch req.Action {
	case "health":
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	case "word":
		known := s.svc.CheckWord(req.Text)
		s.sendResponse(WordResponse{ID: req.ID, Word: req.Text, Known: known, TimeTaken: elapsed(start)})
	case "suggest":
		limit := utils.ClampLimit(req.Limit, s.cfg.Spell.DefaultLimit, s.cfg.Server.MaxLimit)
		s.sendWords(req.ID, s.svc.SuggestCorrections(req.Text, limit), start)
	case "predict":
		limit := utils.ClampLimit(req.Limit, s.cfg.Complete.DefaultLimit, s.cfg.Server.MaxLimit)
		s.sendWords(req.ID, s.svc.PredictCompletions(req.Text, limit), start)
	case "complete":
		limit := utils.ClampLimit(req.Limit, s.cfg.Complete.DefaultLimit, s.cfg.Server.MaxLimit)
		s.sendWords(req.ID, s.svc.Complete(req.Text, limit), start)
	case "root":
		sendResult(s, req.ID, s.svc.FindRoot(req.Text), start)
	case "decompose":
		sendResult(s, req.ID, s.svc.Decompose(req.Text), start)
	case "sentiment":
		sendResult(s, req.ID, s.svc.AnalyzeSentiment(req.Text), start)
	case "check":
		sendResult(s, req.ID, s.svc.CheckDocument(req.Text), start)
	case "info":
		sendResult(s, req.ID, s.svc.WordInfo(req.Text), start)
	case "translate":
		sendResult(s, req.ID, s.svc.Translate(req.Text), start)
	case "stats":
		sendResult(s, req.ID, s.svc.Stats(), start)
	}
}

// actions maps every supported action to whether it requires text.
var actions = map[string]bool{
	"health":    false,
	"stats":     false,
	"word":      true,
	"suggest":   true,
	"predict":   true,
	"complete":  true,
	"root":      true,
	"decompose": true,
	"sentiment": true,
	"check":     true,
	"info":      true,
	"translate": true,
}

// sendWords ranks words by position, 1 being the best.
func (s *Server) sendWords(id string, words []string, start time.Time) {
	ranks := utils.CreateRankList(len(words))
	suggestions := make([]Suggestion, len(words))
	for i, w := range words {
		suggestions[i] = Suggestion{Word: w, Rank: ranks[i]}
	}
	s.sendResponse(WordsResponse{
		ID:          id,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed(start),
	})
}

func sendResult[T any](s *Server, id string, result T, start time.Time) {
	s.sendResponse(ResultResponse[T]{ID: id, Result: result, TimeTaken: elapsed(start)})
}

// sendResponse encodes response as msgpack and flushes it to the client.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		s.log.Errorf("Writing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.log.Debugf("Request %q failed: %s (%d)", id, message, code)
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}

// elapsed returns microseconds since start.
func elapsed(start time.Time) int64 {
	return time.Since(start).Microseconds()
}
