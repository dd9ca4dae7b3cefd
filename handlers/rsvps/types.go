package rsvps

import (
	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrFailedSaveRsvp   = "Failed to save RSVP"
	ErrFailedFetchRsvps = "Failed to fetch RSVPs"
	ErrFailedExport     = "Failed to export RSVPs"
	ErrInvalidRequest   = "Invalid request data"

	ErrNameRequired     = "Name is required"
	ErrAttendeesMinimum = "At least 1 attendee"
	ErrAttendeesMaximum = "Maximum 6 attendees"
)

// RSVPs bounds
const (
	MinAttendees     = 1
	MaxAttendees     = 6
	DefaultAttendees = 1
)

// CreateRsvpRequest is the body of the RSVP submission endpoint.
// Attendees is a pointer so an omitted value can fall back to the default
// while an explicit out-of-range value is rejected.
type CreateRsvpRequest struct {
	Name      string `json:"name"`
	Attendees *int   `json:"attendees"`
}

// Validate returns per-field messages for every violated rule
func (r *CreateRsvpRequest) Validate() map[string]string {
	fields := make(map[string]string)

	if r.Name == "" {
		fields["name"] = ErrNameRequired
	}

	if r.Attendees != nil {
		if *r.Attendees < MinAttendees {
			fields["attendees"] = ErrAttendeesMinimum
		} else if *r.Attendees > MaxAttendees {
			fields["attendees"] = ErrAttendeesMaximum
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// AttendeeCount resolves the submitted party size, applying the default
func (r *CreateRsvpRequest) AttendeeCount() int {
	if r.Attendees == nil {
		return DefaultAttendees
	}
	return *r.Attendees
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
