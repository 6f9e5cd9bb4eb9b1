package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile carries the cycling attributes tied one-to-one to a user.
// It is created together with the user and lives as long as the account.
type Profile struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Age       *int       `json:"age,omitempty"`
	Weight    *float64   `json:"weight,omitempty"`
	Gender    *Gender    `gorm:"type:varchar(1)" json:"gender,omitempty"`
	Region    *Region    `json:"region,omitempty"`
	BikeID    *uuid.UUID `gorm:"type:uuid" json:"bike_id,omitempty"`
	Bike      *Bike      `gorm:"foreignKey:BikeID" json:"bike,omitempty"`
	ImagePath string     `json:"image_path,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (profile *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	return
}
