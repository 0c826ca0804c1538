package controllers

import (
	"net/http"
	"strconv"

	"hotel-booking-admin/services"
	"hotel-booking-admin/utils"

	"github.com/gin-gonic/gin"
)

type BlockController struct {
	BlockSvc    *services.BlockService
	CalendarSvc *services.CalendarService
}

func NewBlockController(blockSvc *services.BlockService, calendarSvc *services.CalendarService) *BlockController {
	return &BlockController{BlockSvc: blockSvc, CalendarSvc: calendarSvc}
}

type toggleBlockPayload struct {
	RoomID uint   `json:"room_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

// GET /api/room-blocks?start=2025-01-01&end=2025-12-31
func (ctrl *BlockController) GetBlocks(c *gin.Context) {
	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start: "+err.Error())
		return
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end: "+err.Error())
		return
	}

	blocks, err := ctrl.BlockSvc.ListBlocks(start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, blocks)
}

// ToggleBlock mirrors the calendar cell click: create, cycle, or clear.
func (ctrl *BlockController) ToggleBlock(c *gin.Context) {
	var payload toggleBlockPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	date, err := utils.ParseDate(payload.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date: "+err.Error())
		return
	}

	block, err := ctrl.BlockSvc.ToggleBlock(payload.RoomID, date, payload.Type)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if block == nil {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"cleared": true})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, block)
}

func (ctrl *BlockController) DeleteBlock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BlockSvc.DeleteBlock(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GET /api/calendar?hotel_id=1&start=2025-01-01&end=2025-12-31
func (ctrl *BlockController) GetCalendar(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Query("hotel_id"), 10, 64)
	if err != nil || hotelID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}
	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start: "+err.Error())
		return
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end: "+err.Error())
		return
	}

	cells, err := ctrl.CalendarSvc.RoomOccupancy(uint(hotelID), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cells)
}
