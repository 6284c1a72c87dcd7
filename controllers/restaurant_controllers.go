package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tavolo-app/backend/models"
	"github.com/tavolo-app/backend/services"
	"github.com/tavolo-app/backend/utils"
)

type RestaurantController struct {
	service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{service: service}
}

// GetInfo returns the singleton restaurant record, or null when it does not
// exist (or cannot be read).
func (rc *RestaurantController) GetInfo(c *gin.Context) {
	info, err := rc.service.GetInfo()
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching restaurant info: %v", err)
		utils.RespondJSON(c, http.StatusOK, "Restaurant info", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant info", info)
}

func (rc *RestaurantController) UpdateInfo(c *gin.Context) {
	var update models.RestaurantInfoUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant info payload"))
		return
	}

	info, err := rc.service.UpdateInfo(update)
	if err != nil {
		utils.ErrorLogger.Printf("Error updating restaurant info: %v", err)
		utils.RespondJSON(c, http.StatusOK, "Restaurant info could not be updated", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant info updated", info)
}

func (rc *RestaurantController) GetHours(c *gin.Context) {
	hours, err := rc.service.GetHours()
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching opening hours: %v", err)
		utils.RespondJSON(c, http.StatusOK, "Opening hours", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Opening hours", hours)
}

func (rc *RestaurantController) GetLocation(c *gin.Context) {
	location, err := rc.service.GetLocation()
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching location: %v", err)
		utils.RespondJSON(c, http.StatusOK, "Location", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Location", location)
}

func (rc *RestaurantController) GetContactInfo(c *gin.Context) {
	contact, err := rc.service.GetContactInfo()
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching contact info: %v", err)
		utils.RespondJSON(c, http.StatusOK, "Contact info", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Contact info", contact)
}
