package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkowalski/cycling-events-api/internal/helpers"
	"github.com/mkowalski/cycling-events-api/internal/models"
	"github.com/mkowalski/cycling-events-api/internal/registry"
)

type EventRequest struct {
	EventName        string    `json:"event_name" binding:"required,max=128"`
	EventType        int       `json:"event_type" binding:"required"`
	Limit            *int      `json:"limit" binding:"required"`
	Distance         float64   `json:"distance" binding:"required"`
	RouteDescription string    `json:"route_description" binding:"required"`
	Date             time.Time `json:"date" binding:"required"`
	Start            string    `json:"start" binding:"required,max=128"`
	Finish           string    `json:"finish" binding:"required,max=128"`
	Region           int       `json:"region" binding:"required"`
	Category         int       `json:"category" binding:"required"`
}

// eventFieldError validates the fields the binding layer cannot express:
// enum codes, a non-negative limit and a positive distance. It returns an
// empty string when the request is valid.
func eventFieldError(req *EventRequest) string {
	if !models.EventType(req.EventType).Valid() {
		return "Invalid event type."
	}
	if !models.Region(req.Region).Valid() {
		return "Invalid region."
	}
	if !models.Category(req.Category).Valid() {
		return "Invalid category."
	}
	if *req.Limit < 0 {
		return "Limit cannot be negative."
	}
	if req.Distance <= 0 {
		return "Distance must be greater than 0."
	}
	return ""
}

// presentOrFutureDate reports whether the date falls on today or later.
func presentOrFutureDate(date time.Time) bool {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !date.Before(today)
}

func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if msg := eventFieldError(&req); msg != "" {
		helpers.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}
	if !presentOrFutureDate(req.Date) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Event date cannot be in the past.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	event := models.Event{
		EventName:        req.EventName,
		EventType:        models.EventType(req.EventType),
		Limit:            *req.Limit,
		Distance:         req.Distance,
		RouteDescription: req.RouteDescription,
		Date:             req.Date,
		Start:            req.Start,
		Finish:           req.Finish,
		Region:           models.Region(req.Region),
		Category:         models.Category(req.Category),
		CreatorID:        userID.(uuid.UUID),
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": event.ID,
	})
}

func GetEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Preload("Creator").Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	count, err := registry.New(gormDB).ParticipantCount(c.Request.Context(), event.ID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}
	event.AvailableSpots = registry.Availability(&event, count)

	c.JSON(http.StatusOK, event)
}

func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var filter registry.EventFilter
	if region, err := helpers.QueryInt(c, "region"); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid region.")
		return
	} else if region != nil {
		r := models.Region(*region)
		if !r.Valid() {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid region.")
			return
		}
		filter.Region = &r
	}
	if category, err := helpers.QueryInt(c, "category"); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid category.")
		return
	} else if category != nil {
		cat := models.Category(*category)
		if !cat.Valid() {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid category.")
			return
		}
		filter.Category = &cat
	}
	if eventType, err := helpers.QueryInt(c, "event_type"); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event type.")
		return
	} else if eventType != nil {
		t := models.EventType(*eventType)
		if !t.Valid() {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event type.")
			return
		}
		filter.EventType = &t
	}

	events, err := registry.New(gormDB).ListEvents(c.Request.Context(), filter)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func UpdateEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if msg := eventFieldError(&req); msg != "" {
		helpers.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	if event.CreatorID != userID.(uuid.UUID) {
		helpers.RespondWithError(c, http.StatusForbidden, "Only the event creator can edit this event.")
		return
	}

	event.EventName = req.EventName
	event.EventType = models.EventType(req.EventType)
	event.Limit = *req.Limit
	event.Distance = req.Distance
	event.RouteDescription = req.RouteDescription
	event.Date = req.Date
	event.Start = req.Start
	event.Finish = req.Finish
	event.Region = models.Region(req.Region)
	event.Category = models.Category(req.Category)

	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}
