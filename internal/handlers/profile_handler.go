package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkowalski/cycling-events-api/internal/helpers"
	"github.com/mkowalski/cycling-events-api/internal/models"
)

type ProfileRequest struct {
	FirstName *string    `form:"first_name" json:"first_name"`
	LastName  *string    `form:"last_name" json:"last_name"`
	Email     *string    `form:"email" json:"email" binding:"omitempty,email"`
	Age       *int       `form:"age" json:"age"`
	Weight    *float64   `form:"weight" json:"weight"`
	Gender    *string    `form:"gender" json:"gender"`
	Region    *int       `form:"region" json:"region"`
	BikeID    *uuid.UUID `form:"bike_id" json:"bike_id"`
}

func GetProfile(c *gin.Context) {
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

	var profile models.Profile
	if err := gormDB.Preload("User").Preload("Bike").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Profile not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving profile.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile edits the user's details and cycling attributes in one
// request, mirroring the combined account/profile form. Attaching a bike
// overwrites any previous link; the old bike record stays around.
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	var req ProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if req.Age != nil && *req.Age <= 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Age must be greater than 0.")
		return
	}
	if req.Weight != nil && *req.Weight <= 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Weight must be greater than 0.")
		return
	}
	if req.Gender != nil && !models.Gender(*req.Gender).Valid() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid gender.")
		return
	}
	if req.Region != nil && !models.Region(*req.Region).Valid() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid region.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var profile models.Profile
	if err := gormDB.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Profile not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving profile.")
		return
	}

	if req.BikeID != nil {
		var bike models.Bike
		if err := gormDB.Where("id = ?", *req.BikeID).First(&bike).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				helpers.RespondWithError(c, http.StatusNotFound, "Bike not found.")
				return
			}
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error verifying bike.")
			return
		}
		profile.BikeID = req.BikeID
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadImage(c, imageFile, "profiles")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if profile.ImagePath != "" {
			helpers.DeleteFile(profile.ImagePath)
		}
		profile.ImagePath = imagePath
	}

	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Weight != nil {
		profile.Weight = req.Weight
	}
	if req.Gender != nil {
		gender := models.Gender(*req.Gender)
		profile.Gender = &gender
	}
	if req.Region != nil {
		region := models.Region(*req.Region)
		profile.Region = &region
	}
	if req.FirstName != nil {
		profile.User.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.User.LastName = *req.LastName
	}
	if req.Email != nil {
		profile.User.Email = *req.Email
	}

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(profile.User).Error; err != nil {
			return err
		}
		return tx.Save(&profile).Error
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully.",
		"profile": profile,
	})
}
