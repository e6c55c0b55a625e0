// Package quality derives a fallback quality score from a submission's text
// when the caller did not supply one. It is a shallow heuristic: length tiers
// plus a bonus for code-looking content.
package quality

import (
	"regexp"
	"strings"
)

const maxScore = 100

var codeLikePattern = regexp.MustCompile(
	`[;{}]|\b(def|class|return|import|for|while|if|else|elif)\b|=>|\bconst\b|\bfunction\b`,
)

func Score(submissionText string) int {
	words := strings.Fields(strings.TrimSpace(submissionText))

	var score int
	switch {
	case len(words) < 30:
		score = 40
	case len(words) <= 80:
		score = 65
	default:
		score = 85
	}

	if codeLikePattern.MatchString(submissionText) {
		score += 10
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}
