package quality

import (
	"fmt"
	"math"
)

const (
	errorPenalty   = 10
	warningPenalty = 5
	// penalties are spread over at least this many words
	minScoredWords = 10
)

// ComputeScore grades a document from its error and warning counts per word.
// Info findings are free. The result is in [0,100] and never rises when an
// error or warning is added to a text of the same length.
func ComputeScore(stats Statistics) Score {
	words := max(stats.TotalWords, minScoredWords)
	penalty := float64(errorPenalty*stats.Errors+warningPenalty*stats.Warnings) * minScoredWords / float64(words)
	score := int(math.Round(100 - penalty))
	score = max(0, min(100, score))

	var details []string
	if stats.Errors > 0 {
		details = append(details, fmt.Sprintf("%d error(s)", stats.Errors))
	}
	if stats.Warnings > 0 {
		details = append(details, fmt.Sprintf("%d warning(s)", stats.Warnings))
	}
	if stats.Info > 0 {
		details = append(details, fmt.Sprintf("%d note(s), not scored", stats.Info))
	}
	return Score{Score: score, Level: Level(score), Details: details}
}

// Level names a score band.
func Level(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Fair"
	case score >= 40:
		return "Passable"
	default:
		return "Needs work"
	}
}
