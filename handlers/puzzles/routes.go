package puzzles

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to puzzles
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/puzzles", GetPuzzles)
	r.POST("/puzzle/check", CheckPuzzleAnswer)
}
