package rsvps

import (
	"api/realtime"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to RSVPs
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/rsvp", CreateRsvp)
	r.GET("/rsvps", GetRsvps)
	r.GET("/rsvps/export", ExportRsvps)
	r.GET("/ws/rsvps", realtime.HandleWebSocket)
}
