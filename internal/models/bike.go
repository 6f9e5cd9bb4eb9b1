package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bike exists independently of any profile. A profile points at a bike,
// not the other way around, so reassigning leaves the old record behind.
type Bike struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Brand     string    `gorm:"not null" json:"brand"`
	Model     string    `gorm:"not null" json:"model"`
	BikeType  BikeType  `gorm:"not null" json:"bike_type"`
	Weight    float64   `gorm:"not null" json:"weight"`
	ImagePath string    `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (bike *Bike) BeforeCreate(tx *gorm.DB) (err error) {
	if bike.ID == uuid.Nil {
		bike.ID = uuid.New()
	}
	return
}
