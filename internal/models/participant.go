package models

import (
	"time"

	"github.com/google/uuid"
)

// EventParticipant is the membership row joining a profile to an event.
// The unique index makes a duplicate signup a constraint violation even
// if two requests race past the application-level check.
type EventParticipant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_profile" json:"event_id"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_profile" json:"profile_id"`
	Profile   *Profile  `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (EventParticipant) TableName() string {
	return "event_participants"
}
