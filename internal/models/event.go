package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EventName        string    `gorm:"not null" json:"event_name"`
	EventType        EventType `gorm:"not null" json:"event_type"`
	Limit            int       `gorm:"not null" json:"limit"`
	Distance         float64   `gorm:"not null" json:"distance"`
	RouteDescription string    `gorm:"not null;type:text" json:"route_description"`
	Date             time.Time `gorm:"not null" json:"date"`
	Start            string    `gorm:"not null" json:"start"`
	Finish           string    `gorm:"not null" json:"finish"`
	Region           Region    `gorm:"not null" json:"region"`
	Category         Category  `gorm:"not null" json:"category"`
	CreatorID        uuid.UUID `gorm:"type:uuid;not null;index" json:"creator_id"`
	Creator          *User     `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Participants []EventParticipant `gorm:"foreignKey:EventID" json:"participants,omitempty"`

	AvailableSpots int `gorm:"-" json:"available_spots"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}
