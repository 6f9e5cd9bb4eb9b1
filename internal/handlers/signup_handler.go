package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkowalski/cycling-events-api/internal/helpers"
	"github.com/mkowalski/cycling-events-api/internal/models"
	"github.com/mkowalski/cycling-events-api/internal/registry"
)

// EventRegistry is the part of the registry the signup endpoints need.
type EventRegistry interface {
	SignUp(ctx context.Context, eventID, userID uuid.UUID) error
	Resign(ctx context.Context, eventID, userID uuid.UUID) error
	ListMyEvents(ctx context.Context, userID uuid.UUID) (created, signedUp []models.Event, err error)
	Participants(ctx context.Context, eventID uuid.UUID) ([]models.Profile, error)
}

type SignupHandler struct {
	registry EventRegistry
}

func NewSignupHandler(reg EventRegistry) *SignupHandler {
	return &SignupHandler{registry: reg}
}

func (h *SignupHandler) SignUp(c *gin.Context) {
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

	err = h.registry.SignUp(c.Request.Context(), eventID, userID.(uuid.UUID))
	switch {
	case err == nil:
		helpers.RespondWithMessage(c, http.StatusOK, "Signed up for the event.")
	case errors.Is(err, registry.ErrEventNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
	case errors.Is(err, registry.ErrProfileNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, "Profile not found.")
	case errors.Is(err, registry.ErrCapacityExceeded):
		helpers.RespondWithError(c, http.StatusConflict, "Event has no open spots.")
	case errors.Is(err, registry.ErrAlreadySignedUp):
		helpers.RespondWithError(c, http.StatusConflict, "You are already signed up for this event.")
	default:
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to sign up for the event.")
	}
}

func (h *SignupHandler) Resign(c *gin.Context) {
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

	err = h.registry.Resign(c.Request.Context(), eventID, userID.(uuid.UUID))
	switch {
	case err == nil:
		helpers.RespondWithMessage(c, http.StatusOK, "Resigned from the event.")
	case errors.Is(err, registry.ErrEventNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
	case errors.Is(err, registry.ErrProfileNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, "Profile not found.")
	default:
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to resign from the event.")
	}
}

func (h *SignupHandler) MyEvents(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	created, signedUp, err := h.registry.ListMyEvents(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		if errors.Is(err, registry.ErrProfileNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Profile not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"created":   created,
		"signed_up": signedUp,
	})
}

func (h *SignupHandler) Participants(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	participants, err := h.registry.Participants(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, registry.ErrEventNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving participants.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"participants": participants})
}
