package services

import (
	"fmt"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
)

// CreateRsvp writes one RSVP row and returns the stored record with its
// generated identifier and creation timestamp
func CreateRsvp(name string, attendees int) (models.Rsvp, error) {
	rsvp := models.Rsvp{
		Name:      name,
		Attendees: attendees,
	}

	start := time.Now()
	if err := database.DB.Create(&rsvp).Error; err != nil {
		return models.Rsvp{}, fmt.Errorf("failed to create rsvp: %w", err)
	}
	metrics.RecordDBOperation("insert", "rsvps", start)

	return rsvp, nil
}

// ListRsvps returns all stored RSVPs in insertion order. The slice is never
// nil so an empty guest list serializes as an empty JSON array.
func ListRsvps() ([]models.Rsvp, error) {
	rsvps := make([]models.Rsvp, 0)

	start := time.Now()
	if err := database.DB.Order("created_at").Find(&rsvps).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch rsvps: %w", err)
	}
	metrics.RecordDBOperation("select", "rsvps", start)

	return rsvps, nil
}
