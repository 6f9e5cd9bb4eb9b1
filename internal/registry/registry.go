// Package registry owns the event/participant relationship: capacity-limited
// signup, idempotent resignation and the event listings built on top of them.
package registry

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/mkowalski/cycling-events-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrCapacityExceeded = errors.New("event has no open spots")
	ErrAlreadySignedUp  = errors.New("profile is already signed up for this event")
)

type Registry struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// EventFilter narrows ListEvents. Nil fields are ignored, so any subset
// of the three criteria can be combined.
type EventFilter struct {
	Region    *models.Region
	Category  *models.Category
	EventType *models.EventType
}

// SignUp adds the caller's profile to the event's participant set. The
// capacity and membership checks run inside one transaction holding a row
// lock on the event, so two signups racing for the last spot serialize
// and only one commits.
func (r *Registry) SignUp(ctx context.Context, eventID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", eventID).First(&event).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		profile, err := profileForUser(tx, userID)
		if err != nil {
			return err
		}

		// Membership is checked before capacity so a participant of a full
		// event is told they are already in, not that the event is full.
		var member int64
		if err := tx.Model(&models.EventParticipant{}).
			Where("event_id = ? AND profile_id = ?", event.ID, profile.ID).
			Count(&member).Error; err != nil {
			return err
		}
		if member > 0 {
			return ErrAlreadySignedUp
		}

		var count int64
		if err := tx.Model(&models.EventParticipant{}).
			Where("event_id = ?", event.ID).Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(event.Limit) {
			return ErrCapacityExceeded
		}

		participant := models.EventParticipant{EventID: event.ID, ProfileID: profile.ID}
		if err := tx.Create(&participant).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadySignedUp
			}
			return err
		}
		return nil
	})
}

// Resign removes the caller's profile from the event. Removing an absent
// member is not an error.
func (r *Registry) Resign(ctx context.Context, eventID, userID uuid.UUID) error {
	db := r.db.WithContext(ctx)

	var event models.Event
	if err := db.Select("id").Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	profile, err := profileForUser(db, userID)
	if err != nil {
		return err
	}

	return db.Where("event_id = ? AND profile_id = ?", event.ID, profile.ID).
		Delete(&models.EventParticipant{}).Error
}

// ListEvents returns events ordered by name ascending, optionally narrowed
// by the filter.
func (r *Registry) ListEvents(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	query := r.db.WithContext(ctx).Model(&models.Event{})
	if filter.Region != nil {
		query = query.Where("region = ?", *filter.Region)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.EventType != nil {
		query = query.Where("event_type = ?", *filter.EventType)
	}

	var events []models.Event
	if err := query.Order("event_name ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListMyEvents returns the events the user created and the events the
// user's profile is signed up for, both ordered by name.
func (r *Registry) ListMyEvents(ctx context.Context, userID uuid.UUID) (created, signedUp []models.Event, err error) {
	db := r.db.WithContext(ctx)

	profile, err := profileForUser(db, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := db.Where("creator_id = ?", userID).
		Order("event_name ASC").Find(&created).Error; err != nil {
		return nil, nil, err
	}

	if err := db.Model(&models.Event{}).
		Joins("JOIN event_participants ON event_participants.event_id = events.id").
		Where("event_participants.profile_id = ?", profile.ID).
		Order("events.event_name ASC").
		Find(&signedUp).Error; err != nil {
		return nil, nil, err
	}
	return created, signedUp, nil
}

// Participants returns the profiles signed up for an event, with their users.
func (r *Registry) Participants(ctx context.Context, eventID uuid.UUID) ([]models.Profile, error) {
	db := r.db.WithContext(ctx)

	var event models.Event
	if err := db.Select("id").Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var profiles []models.Profile
	if err := db.Model(&models.Profile{}).
		Joins("JOIN event_participants ON event_participants.profile_id = profiles.id").
		Where("event_participants.event_id = ?", eventID).
		Preload("User").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// ParticipantCount returns the current size of an event's participant set.
func (r *Registry) ParticipantCount(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EventParticipant{}).
		Where("event_id = ?", eventID).Count(&count).Error
	return int(count), err
}

// Availability reports the open spots, clamped at zero. A participant set
// larger than the limit means the stored data is inconsistent.
func Availability(event *models.Event, participantCount int) int {
	spots := event.Limit - participantCount
	if spots < 0 {
		log.Printf("event %s has %d participants over its limit of %d", event.ID, participantCount, event.Limit)
		return 0
	}
	return spots
}

func profileForUser(db *gorm.DB, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
