package utils

import (
	"strings"

	"api/models"
)

// NormalizeAnswer trims surrounding whitespace and lowercases a submitted answer
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// AnswerAccepted reports whether the submitted answer matches the puzzle's
// accepted set: the alternative answers when defined, otherwise the single
// canonical answer. Comparison is case-insensitive after trimming.
func AnswerAccepted(puzzle *models.Puzzle, submitted string) bool {
	normalized := NormalizeAnswer(submitted)

	accepted := puzzle.AcceptedAnswers
	if len(accepted) == 0 {
		accepted = []string{puzzle.Answer}
	}

	for _, answer := range accepted {
		if normalized == NormalizeAnswer(answer) {
			return true
		}
	}
	return false
}
