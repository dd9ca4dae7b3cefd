package rsvps

import (
	"log"
	"net/http"

	"api/database"
	"api/models"
	"api/realtime"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

const rsvpsCacheKey = "rsvp_list"

// CreateRsvp stores a guest's RSVP
// @Summary Submit an RSVP
// @Description Persist a guest's name and party size, then mirror the record to the host's spreadsheet in the background
// @Tags RSVPs
// @Accept json
// @Produce json
// @Param request body CreateRsvpRequest true "Guest name and party size"
// @Success 200 {object} models.Rsvp
// @Failure 400 {object} map[string]map[string]string
// @Failure 500 {object} map[string]string
// @Router /rsvp [post]
func CreateRsvp(c *gin.Context) {
	var req CreateRsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if fields := req.Validate(); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	rsvp, err := services.CreateRsvp(req.Name, req.AttendeeCount())
	if err != nil {
		log.Println("RSVP creation error: ", err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedSaveRsvp)
		return
	}

	database.InvalidateCache(c.Request.Context(), rsvpsCacheKey)

	// Detached side effects: the visitor's response never waits on the
	// spreadsheet mirror or the realtime feed
	go services.AppendRsvpToSheet(rsvp.Name, rsvp.Attendees)
	realtime.NotifyRsvpCreated(rsvp)

	c.JSON(http.StatusOK, rsvp)
}

// GetRsvps lists all stored RSVPs
// @Summary List RSVPs
// @Description Get every stored RSVP, no pagination
// @Tags RSVPs
// @Accept json
// @Produce json
// @Success 200 {array} models.Rsvp
// @Failure 500 {object} map[string]string
// @Router /rsvps [get]
func GetRsvps(c *gin.Context) {
	ctx := c.Request.Context()

	var rsvps []models.Rsvp
	if found, _ := database.GetFromCache(ctx, rsvpsCacheKey, &rsvps); found {
		c.JSON(http.StatusOK, rsvps)
		return
	}

	rsvps, err := services.ListRsvps()
	if err != nil {
		log.Println("Error fetching RSVPs: ", err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchRsvps)
		return
	}

	_ = database.SetToCache(ctx, rsvpsCacheKey, rsvps)

	c.JSON(http.StatusOK, rsvps)
}
