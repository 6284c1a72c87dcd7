package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tavolo-app/backend/models"
	"github.com/tavolo-app/backend/services"
	"github.com/tavolo-app/backend/utils"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// GetAllReservations returns every reservation. Store trouble degrades to an
// empty list; callers cannot tell "none" from "unreachable" and must not try.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.service.GetAll()
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching reservations: %v", err)
		utils.RespondJSON(c, http.StatusOK, "List of reservations", []models.Reservation{})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	reservation, err := rc.service.GetByID(id)
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching reservation %d: %v", id, err)
		utils.RespondJSON(c, http.StatusOK, "Reservation detail", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// CreateReservation books a slot. Input may use either field convention;
// non-numeric party size is rejected outright.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var input models.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation payload"))
		return
	}

	reservation, err := rc.service.Create(input)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.ErrorLogger.Printf("Error creating reservation: %v", err)
		utils.RespondJSON(c, http.StatusOK, "Reservation could not be created", nil)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	var update models.ReservationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid update payload"))
		return
	}

	reservation, err := rc.service.Update(id, update)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.ErrorLogger.Printf("Error updating reservation %d: %v", id, err)
		utils.RespondJSON(c, http.StatusOK, "Reservation could not be updated", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	if err := rc.service.Delete(id); err != nil {
		utils.ErrorLogger.Printf("Error deleting reservation %d: %v", id, err)
		utils.RespondJSON(c, http.StatusOK, "Reservation could not be deleted", gin.H{"deleted": false})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"deleted": true, "reservation_id": id})
}

// CheckAvailability reports whether one (date, time) slot still has capacity.
// Endpoint: GET /reservations/availability?date=YYYY-MM-DD&time=HH:MM
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	slot := c.Query("time")
	if date == "" || slot == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameters 'date' and 'time' are required"))
		return
	}

	available := rc.service.CheckAvailability(date, slot)
	utils.RespondJSON(c, http.StatusOK, "Slot availability", gin.H{
		"date":      date,
		"time":      slot,
		"available": available,
	})
}

// GetAvailableTimeSlots lists the open slots of the fixed daily schedule.
// Endpoint: GET /reservations/time-slots?date=YYYY-MM-DD
func (rc *ReservationController) GetAvailableTimeSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameter 'date' is required"))
		return
	}

	slots := rc.service.GetAvailableTimeSlots(date)
	utils.RespondJSON(c, http.StatusOK, "Available time slots", gin.H{
		"date":  date,
		"slots": slots,
	})
}
