package controllers

import (
	"net/http"
	"strconv"

	"hotel-booking-admin/services"
	"hotel-booking-admin/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// GetAvailability computes the grid fresh on every call.
// GET /api/availability?hotel_id=1&check_in=2025-03-10&nights=2
func (ctrl *AvailabilityController) GetAvailability(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Query("hotel_id"), 10, 64)
	if err != nil || hotelID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}

	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in: "+err.Error())
		return
	}

	nights, err := strconv.Atoi(c.Query("nights"))
	if err != nil || nights <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "nights must be a positive integer")
		return
	}

	records, err := ctrl.AvailabilitySvc.ComputeAvailability(uint(hotelID), checkIn, nights)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, records)
}
