package controllers

import (
	"net/http"
	"strconv"

	"hotel-booking-admin/models"
	"hotel-booking-admin/services"
	"hotel-booking-admin/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	CatalogSvc *services.CatalogService
}

func NewRoomTypeController(svc *services.CatalogService) *RoomTypeController {
	return &RoomTypeController{CatalogSvc: svc}
}

type roomTypePayload struct {
	HotelID      uint    `json:"hotel_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	BasePrice    float64 `json:"base_price"`
	MaxOccupancy int     `json:"max_occupancy"`
	RoomsCount   int     `json:"rooms_count"`
}

// GetRoomTypes returns a hotel's room types with resolved capacities.
// GET /api/room-types?hotel_id=1
func (ctrl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Query("hotel_id"), 10, 64)
	if err != nil || hotelID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}

	roomTypes, err := ctrl.CatalogSvc.ListRoomTypes(uint(hotelID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roomTypes)
}

func (ctrl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var payload roomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	rt := models.RoomType{
		HotelID:      payload.HotelID,
		Name:         payload.Name,
		Description:  payload.Description,
		BasePrice:    payload.BasePrice,
		MaxOccupancy: payload.MaxOccupancy,
		RoomsCount:   payload.RoomsCount,
	}
	if err := ctrl.CatalogSvc.CreateRoomType(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func (ctrl *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload roomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	rt := models.RoomType{
		ID:           id,
		HotelID:      payload.HotelID,
		Name:         payload.Name,
		Description:  payload.Description,
		BasePrice:    payload.BasePrice,
		MaxOccupancy: payload.MaxOccupancy,
		RoomsCount:   payload.RoomsCount,
	}
	if err := ctrl.CatalogSvc.UpdateRoomType(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (ctrl *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.CatalogSvc.DeleteRoomType(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
