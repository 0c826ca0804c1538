package controllers

import (
	"net/http"
	"strconv"

	"hotel-booking-admin/models"
	"hotel-booking-admin/services"
	"hotel-booking-admin/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type roomPayload struct {
	HotelID    uint   `json:"hotel_id" binding:"required"`
	RoomTypeID uint   `json:"room_type_id" binding:"required"`
	RoomNumber string `json:"room_number" binding:"required"`
	Status     string `json:"status"`
}

type roomStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	var hotelID uint64
	if v := c.Query("hotel_id"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid hotel_id")
			return
		}
		hotelID = parsed
	}

	rooms, err := ctrl.RoomSvc.ListRooms(uint(hotelID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	room := models.Room{
		HotelID:    payload.HotelID,
		RoomTypeID: payload.RoomTypeID,
		RoomNumber: payload.RoomNumber,
		Status:     payload.Status,
	}
	if err := ctrl.RoomSvc.CreateRoom(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	room := models.Room{
		HotelID:    payload.HotelID,
		RoomTypeID: payload.RoomTypeID,
		RoomNumber: payload.RoomNumber,
		Status:     payload.Status,
	}
	room.ID = id
	if err := ctrl.RoomSvc.UpdateRoom(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload roomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if err := ctrl.RoomSvc.UpdateRoomStatus(id, payload.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": payload.Status})
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.DeleteRoom(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
