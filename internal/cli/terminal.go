package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bastiangx/teny/pkg/quality"
	"github.com/charmbracelet/lipgloss"
)

var (
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
)

func severityStyle(s quality.Severity) lipgloss.Style {
	switch s {
	case quality.SeverityError:
		return errorStyle
	case quality.SeverityWarning:
		return warningStyle
	default:
		return infoStyle
	}
}

func (h *InputHandler) showHelp() {
	h.log.Print("Commands:")
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		h.log.Printf("  %s", commands[name].usage)
	}
	h.log.Print("  stats          table and cache sizes")
}

func (h *InputHandler) printList(title string, words []string) {
	if len(words) == 0 {
		h.log.Warnf("No %s found", title)
		return
	}
	h.log.Printf("Found %d %s:", len(words), title)
	for i, w := range words {
		h.log.Printf("%2d. %s", i+1, wordStyle.Render(w))
	}
}

func (h *InputHandler) showWord(arg string) {
	if h.svc.CheckWord(arg) {
		h.log.Printf("%s is correct", wordStyle.Render(arg))
		return
	}
	h.log.Printf("%s is unknown", errorStyle.Render(arg))
}

func (h *InputHandler) showSuggestions(arg string) {
	h.printList("corrections for '"+arg+"'", h.svc.SuggestCorrections(arg, h.suggestLimit))
}

func (h *InputHandler) showRoot(arg string) {
	lemma := h.svc.Lemmatize(arg)
	h.log.Printf("root: %s %s", wordStyle.Render(lemma.Root), mutedStyle.Render(lemmaNote(lemma.Prefix, lemma.Suffix, lemma.Exception)))
}

func lemmaNote(prefix, suffix string, exception bool) string {
	if exception {
		return "(irregular)"
	}
	var parts []string
	if prefix != "" {
		parts = append(parts, "prefix "+prefix+"-")
	}
	if suffix != "" {
		parts = append(parts, "suffix -"+suffix)
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (h *InputHandler) showDecomposition(arg string) {
	d := h.svc.Decompose(arg)
	h.log.Printf("%s + %s + %s",
		mutedStyle.Render(orDash(d.Prefix)), wordStyle.Render(d.Root), mutedStyle.Render(orDash(d.Suffix)))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// showCompletions also offers corrections when nothing in the lexicon starts with arg.
func (h *InputHandler) showCompletions(arg string) {
	words := h.svc.Complete(arg, h.suggestLimit)
	if len(words) == 0 && !h.svc.CheckWord(arg) {
		h.showSuggestions(arg)
		return
	}
	h.printList("completions for '"+arg+"'", words)
}

func (h *InputHandler) showPredictions(arg string) {
	h.printList("predictions after '"+arg+"'", h.svc.PredictCompletions(arg, h.suggestLimit))
}

func (h *InputHandler) showSentiment(arg string) {
	res := h.svc.AnalyzeSentiment(arg)
	h.log.Printf("%s (%d/100)  +%d %v  -%d %v",
		wordStyle.Render(res.Label.String()), res.Score,
		res.PositiveCount, res.PositiveWords, res.NegativeCount, res.NegativeWords)
}

func (h *InputHandler) showInfo(arg string) {
	info := h.svc.WordInfo(arg)
	h.log.Printf("%s  exists=%t known=%t", wordStyle.Render(info.Word), info.Exists, info.Known)
	if info.Definition != "" {
		h.log.Printf("  fr: %s", info.Definition)
	}
	h.log.Printf("  root: %s %s", info.Lemma.Root, mutedStyle.Render(lemmaNote(info.Lemma.Prefix, info.Lemma.Suffix, info.Lemma.Exception)))
	if info.Sentiment != "" {
		h.log.Printf("  sentiment: %s", info.Sentiment)
	}
	if len(info.Suggestions) > 0 {
		h.log.Printf("  did you mean: %s", strings.Join(info.Suggestions, ", "))
	}
}

func (h *InputHandler) showTranslation(arg string) {
	tr := h.svc.Translate(arg)
	if !tr.Found {
		h.log.Warnf("No translation for '%s'", arg)
		return
	}
	h.log.Printf("%s -> %s %s", tr.Word, wordStyle.Render(tr.Translation), mutedStyle.Render("("+tr.Direction+")"))
}

func (h *InputHandler) showReport(arg string) {
	report := h.svc.CheckDocument(arg)
	st := report.Statistics
	h.log.Printf("Score %d/100 (%s)  words=%d sentences=%d errors=%d warnings=%d",
		report.Score.Score, report.Score.Level, st.TotalWords, st.TotalSentences, st.Errors, st.Warnings)
	for _, sg := range report.Suggestions {
		style := severityStyle(sg.Severity)
		line := fmt.Sprintf("%4d  %-8s %-13s %s", sg.Offset, style.Render(string(sg.Severity)), sg.Category, sg.Message)
		if sg.Word != "" {
			line += " " + wordStyle.Render("'"+sg.Word+"'")
		}
		if sg.Hint != "" {
			line += " " + mutedStyle.Render(sg.Hint)
		}
		h.log.Print(line)
	}
	h.log.Printf("Sentiment: %s (%d/100)", report.Sentiment.Label, report.Sentiment.Score)
}

func (h *InputHandler) showStats() {
	stats := h.svc.Stats()
	for _, k := range slices.Sorted(maps.Keys(stats)) {
		h.log.Printf("%-22s %d", k, stats[k])
	}
}
