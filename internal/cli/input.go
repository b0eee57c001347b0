// Package cli runs an interactive prompt over an engine.Service for debugging and trying the analyzers.
package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/charmbracelet/log"
)

// InputHandler reads commands line by line and prints the results.
// A line that does not start with a command is completed when it is a
// single word and checked as a document otherwise.
type InputHandler struct {
	svc          engine.Service
	suggestLimit int
	noFilter     bool
	requestCount int
	log          *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(svc engine.Service, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		svc:          svc,
		suggestLimit: limit,
		noFilter:     noFilter,
		log:          log.Default(),
	}
}

// Start runs the prompt on stdin.
func (h *InputHandler) Start() error {
	h.log.Print("teny CLI")
	h.log.Print("type a command or some Malagasy text and press Enter ('help' lists commands, Ctrl+C to exit):")
	return h.Run(os.Stdin)
}

// Run processes lines from r until it is exhausted.
func (h *InputHandler) Run(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			h.handleInput(line)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

type command struct {
	usage string
	word  bool // argument must be a single valid word
	run   func(h *InputHandler, arg string)
}

var commands = map[string]command{
	"word":      {"word <w>       spelling verdict", true, (*InputHandler).showWord},
	"suggest":   {"suggest <w>    spelling corrections", true, (*InputHandler).showSuggestions},
	"root":      {"root <w>       lemma", true, (*InputHandler).showRoot},
	"decompose": {"decompose <w>  prefix + root + suffix", true, (*InputHandler).showDecomposition},
	"complete":  {"complete <p>   lexicon words starting with p", true, (*InputHandler).showCompletions},
	"info":      {"info <w>       everything about a word", true, (*InputHandler).showInfo},
	"translate": {"translate <w>  glossary lookup", false, (*InputHandler).showTranslation},
	"predict":   {"predict <text> next words", false, (*InputHandler).showPredictions},
	"sentiment": {"sentiment <text>", false, (*InputHandler).showSentiment},
	"check":     {"check <text>   full document report", false, (*InputHandler).showReport},
}

// handleInput dispatches one line.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "help":
		h.showHelp()
		return
	case "stats":
		h.showStats()
		return
	}

	cmd, ok := commands[name]
	if !ok {
		if len(strings.Fields(line)) == 1 {
			cmd, arg = commands["complete"], line
		} else {
			cmd, arg = commands["check"], line
		}
	}
	if arg == "" {
		h.log.Errorf("Missing argument: %s", cmd.usage)
		return
	}
	if cmd.word && !h.noFilter && !utils.IsValidInput(utils.Normalize(arg)) {
		h.log.Warnf("Not a word: '%s' (filtered out)", arg)
		return
	}

	start := time.Now()
	log.Debug("Processing request", "line", line)
	cmd.run(h, arg)
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), line)
}
