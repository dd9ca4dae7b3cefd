package utils

import (
	"testing"

	"api/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswer(t *testing.T) {
	assert.Equal(t, "map", NormalizeAnswer("  MAP "))
	assert.Equal(t, "footsteps", NormalizeAnswer("Footsteps"))
	assert.Equal(t, "", NormalizeAnswer("   "))
}

func TestAnswerAcceptedCanonical(t *testing.T) {
	// The canonical answer of every catalog entry must pass its own check
	for _, p := range models.Puzzles {
		puzzle := p
		assert.True(t, AnswerAccepted(&puzzle, puzzle.Answer), "puzzle %d rejects its canonical answer", puzzle.ID)
		assert.True(t, AnswerAccepted(&puzzle, "  "+puzzle.Answer+" "), "puzzle %d rejects a padded answer", puzzle.ID)
	}
}

func TestAnswerAcceptedAlternatives(t *testing.T) {
	puzzle := models.Puzzle{
		ID:              1,
		Answer:          "map",
		AcceptedAnswers: []string{"map", "a map"},
	}

	assert.True(t, AnswerAccepted(&puzzle, "A Map"))
	assert.True(t, AnswerAccepted(&puzzle, " map"))
	assert.False(t, AnswerAccepted(&puzzle, "atlas"))
}

func TestAnswerAcceptedSingletonFallback(t *testing.T) {
	// Without alternatives, the single canonical answer is the whole set
	puzzle := models.Puzzle{ID: 2, Answer: "footsteps"}

	assert.True(t, AnswerAccepted(&puzzle, "FOOTSTEPS"))
	assert.False(t, AnswerAccepted(&puzzle, "footprint"))
	assert.False(t, AnswerAccepted(&puzzle, ""))
}

func TestFindPuzzle(t *testing.T) {
	assert.NotNil(t, models.FindPuzzle(1))
	assert.NotNil(t, models.FindPuzzle(len(models.Puzzles)))
	assert.Nil(t, models.FindPuzzle(0))
	assert.Nil(t, models.FindPuzzle(99))
}

func TestCatalogIsContiguous(t *testing.T) {
	// IDs must form the dense range 1..N that drives the lock order
	for i, p := range models.Puzzles {
		assert.Equal(t, i+1, p.ID)
	}
}
