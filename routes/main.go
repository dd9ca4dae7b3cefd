package routes

import (
	"api/handlers/puzzles"
	"api/handlers/rsvps"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the API
func Register(r *gin.Engine) {
	api := r.Group("/api")

	// Add metrics middleware to all routes
	api.Use(middleware.MetricsMiddleware())

	RegisterPingRoutes(api)
	puzzles.RegisterRoutes(api)
	rsvps.RegisterRoutes(api)

	// Register metrics endpoint
	RegisterMetricsRoutes(api)
}
