package puzzles

import (
	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrPuzzleNotFound = "Puzzle not found"
	ErrInvalidRequest = "Invalid request data"
)

// CheckAnswerRequest is the body of the answer-check endpoint
type CheckAnswerRequest struct {
	PuzzleID int    `json:"puzzleId"`
	Answer   string `json:"answer"`
}

// CheckAnswerResponse reports the verdict for a submitted answer
type CheckAnswerResponse struct {
	Correct bool `json:"correct"`
}

// PuzzleResponse is the public view of a catalog entry. Answers are withheld;
// the client verifies through the check endpoint.
type PuzzleResponse struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Riddle   string `json:"riddle"`
	Hint     string `json:"hint"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
