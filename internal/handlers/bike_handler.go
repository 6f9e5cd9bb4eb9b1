package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkowalski/cycling-events-api/internal/helpers"
	"github.com/mkowalski/cycling-events-api/internal/models"
)

type BikeRequest struct {
	Brand    string  `form:"brand" json:"brand" binding:"required,max=64"`
	Model    string  `form:"model" json:"model" binding:"required,max=64"`
	BikeType int     `form:"bike_type" json:"bike_type" binding:"required"`
	Weight   float64 `form:"weight" json:"weight" binding:"required"`
}

func bikeFieldError(req *BikeRequest) string {
	if !models.BikeType(req.BikeType).Valid() {
		return "Invalid bike type."
	}
	if req.Weight <= 0 {
		return "Weight must be greater than 0."
	}
	return ""
}

func CreateBike(c *gin.Context) {
	var req BikeRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if msg := bikeFieldError(&req); msg != "" {
		helpers.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	bike := models.Bike{
		Brand:    req.Brand,
		Model:    req.Model,
		BikeType: models.BikeType(req.BikeType),
		Weight:   req.Weight,
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadImage(c, imageFile, "bikes")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		bike.ImagePath = imagePath
	}

	if err := gormDB.Create(&bike).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create bike.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Bike created successfully.",
		"bike_id": bike.ID,
	})
}

func GetBike(c *gin.Context) {
	bikeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid bike ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var bike models.Bike
	if err := gormDB.Where("id = ?", bikeID).First(&bike).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Bike not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving bike.")
		return
	}

	c.JSON(http.StatusOK, bike)
}

func UpdateBike(c *gin.Context) {
	bikeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid bike ID.")
		return
	}

	var req BikeRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if msg := bikeFieldError(&req); msg != "" {
		helpers.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var bike models.Bike
	if err := gormDB.Where("id = ?", bikeID).First(&bike).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Bike not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding bike.")
		return
	}

	bike.Brand = req.Brand
	bike.Model = req.Model
	bike.BikeType = models.BikeType(req.BikeType)
	bike.Weight = req.Weight

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadImage(c, imageFile, "bikes")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if bike.ImagePath != "" {
			helpers.DeleteFile(bike.ImagePath)
		}
		bike.ImagePath = imagePath
	}

	if err := gormDB.Save(&bike).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update bike.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bike updated successfully.",
		"bike":    bike,
	})
}
