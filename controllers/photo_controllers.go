package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tavolo-app/backend/models"
	"github.com/tavolo-app/backend/services"
	"github.com/tavolo-app/backend/utils"
)

type PhotoController struct {
	service *services.PhotoService
}

func NewPhotoController(service *services.PhotoService) *PhotoController {
	return &PhotoController{service: service}
}

// GetAllPhotos lists gallery photos, optionally filtered by ?category=.
func (pc *PhotoController) GetAllPhotos(c *gin.Context) {
	var (
		photos []models.Photo
		err    error
	)
	if category := c.Query("category"); category != "" {
		photos, err = pc.service.GetByCategory(category)
	} else {
		photos, err = pc.service.GetAll()
	}
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching photos: %v", err)
		utils.RespondJSON(c, http.StatusOK, "List of photos", []models.Photo{})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of photos", photos)
}
