package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rsvp represents a guest's confirmation record (name + party size)
type Rsvp struct {
	ID        string    `gorm:"type:varchar(36);primary_key" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Attendees int       `gorm:"type:integer;not null;default:1" json:"attendees"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// BeforeCreate assigns the identifier on the application side so the model
// behaves the same on postgres and on the sqlite test driver
func (r *Rsvp) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
