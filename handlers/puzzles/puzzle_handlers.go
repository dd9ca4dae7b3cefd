package puzzles

import (
	"net/http"

	"api/database"
	"api/models"
	"api/utils"

	"github.com/gin-gonic/gin"
)

const puzzlesCacheKey = "puzzle_catalog"

// GetPuzzles lists the lock catalog in solve order
// @Summary Get the puzzle catalog
// @Description Get the ordered list of locks the visitor must solve. Answers are never included.
// @Tags Puzzles
// @Accept json
// @Produce json
// @Success 200 {array} PuzzleResponse
// @Router /puzzles [get]
func GetPuzzles(c *gin.Context) {
	ctx := c.Request.Context()

	var catalog []PuzzleResponse
	if found, _ := database.GetFromCache(ctx, puzzlesCacheKey, &catalog); found {
		c.JSON(http.StatusOK, catalog)
		return
	}

	catalog = make([]PuzzleResponse, 0, len(models.Puzzles))
	for _, p := range models.Puzzles {
		catalog = append(catalog, PuzzleResponse{
			ID:       p.ID,
			Title:    p.Title,
			Subtitle: p.Subtitle,
			Riddle:   p.Riddle,
			Hint:     p.Hint,
		})
	}

	_ = database.SetToCache(ctx, puzzlesCacheKey, catalog)

	c.JSON(http.StatusOK, catalog)
}

// CheckPuzzleAnswer checks a submitted answer against a lock
// @Summary Check a puzzle answer
// @Description Check a submitted answer against the identified lock. A wrong answer is not an error, just correct=false.
// @Tags Puzzles
// @Accept json
// @Produce json
// @Param request body CheckAnswerRequest true "Puzzle ID and submitted answer"
// @Success 200 {object} CheckAnswerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /puzzle/check [post]
func CheckPuzzleAnswer(c *gin.Context) {
	var req CheckAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	puzzle := models.FindPuzzle(req.PuzzleID)
	if puzzle == nil {
		respondWithError(c, http.StatusNotFound, ErrPuzzleNotFound)
		return
	}

	c.JSON(http.StatusOK, CheckAnswerResponse{
		Correct: utils.AnswerAccepted(puzzle, req.Answer),
	})
}
