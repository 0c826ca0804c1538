package controllers

import (
	"net/http"
	"strconv"

	"hotel-booking-admin/services"
	"hotel-booking-admin/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

type roomTypeSelectionPayload struct {
	RoomTypeID uint `json:"room_type_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

type customerPayload struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Country      string `json:"country"`
	ReferralName string `json:"referral_name"`
	RefAgency    string `json:"ref_agency"`
}

type createBookingPayload struct {
	HotelID    uint                       `json:"hotel_id" binding:"required"`
	RoomTypes  []roomTypeSelectionPayload `json:"room_types" binding:"required"`
	CheckIn    string                     `json:"check_in" binding:"required"`
	Nights     int                        `json:"nights" binding:"required"`
	Customer   customerPayload            `json:"customer" binding:"required"`
	TotalPrice *float64                   `json:"total_price"`
	Notes      string                     `json:"notes"`
}

type updateBookingPayload struct {
	CheckIn   *string                    `json:"check_in"`
	Nights    *int                       `json:"nights"`
	HotelID   *uint                      `json:"hotel_id"`
	RoomTypes []roomTypeSelectionPayload `json:"room_types"`
}

func toSelections(payload []roomTypeSelectionPayload) []services.RoomTypeSelection {
	selections := make([]services.RoomTypeSelection, 0, len(payload))
	for _, p := range payload {
		selections = append(selections, services.RoomTypeSelection{RoomTypeID: p.RoomTypeID, Quantity: p.Quantity})
	}
	return selections
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in: "+err.Error())
		return
	}

	result, err := ctrl.BookingSvc.CreateBooking(services.CreateBookingInput{
		HotelID:   payload.HotelID,
		RoomTypes: toSelections(payload.RoomTypes),
		CheckIn:   checkIn,
		Nights:    payload.Nights,
		Customer: services.CustomerInput{
			Name:         payload.Customer.Name,
			Phone:        payload.Customer.Phone,
			Email:        payload.Customer.Email,
			Country:      payload.Customer.Country,
			ReferralName: payload.Customer.ReferralName,
			RefAgency:    payload.Customer.RefAgency,
		},
		TotalPrice: payload.TotalPrice,
		Notes:      payload.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, result)
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	input := services.UpdateBookingInput{
		Nights:  payload.Nights,
		HotelID: payload.HotelID,
	}
	if payload.CheckIn != nil {
		checkIn, err := utils.ParseDate(*payload.CheckIn)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid check_in: "+err.Error())
			return
		}
		input.CheckIn = &checkIn
	}
	if payload.RoomTypes != nil {
		input.RoomTypes = toSelections(payload.RoomTypes)
	}

	booking, err := ctrl.BookingSvc.UpdateBooking(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.DeleteBooking(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.CancelBooking(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": id})
}

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetBookingDetails(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetBookings lists all bookings, or searches when any filter is present.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	criteria := services.BookingSearchCriteria{
		Name:           c.Query("name"),
		Phone:          c.Query("phone"),
		Email:          c.Query("email"),
		ConfirmationID: c.Query("confirmation_id"),
		HotelName:      c.Query("hotel"),
	}
	hasCriteria := criteria.Name != "" || criteria.Phone != "" || criteria.Email != "" ||
		criteria.ConfirmationID != "" || criteria.HotelName != ""

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date: "+err.Error())
			return
		}
		criteria.Date = &date
		hasCriteria = true
	}

	var (
		bookings interface{}
		err      error
	)
	if hasCriteria {
		bookings, err = ctrl.BookingSvc.SearchBookings(criteria)
	} else {
		bookings, err = ctrl.BookingSvc.GetAllBookings()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
