package controllers

import (
	"net/http"

	"hotel-booking-admin/models"
	"hotel-booking-admin/services"
	"hotel-booking-admin/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	CatalogSvc *services.CatalogService
}

func NewHotelController(svc *services.CatalogService) *HotelController {
	return &HotelController{CatalogSvc: svc}
}

type hotelPayload struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Currency string `json:"currency"`
	Timezone string `json:"timezone"`
}

func (ctrl *HotelController) GetHotels(c *gin.Context) {
	hotels, err := ctrl.CatalogSvc.ListHotels()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	var payload hotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	hotel := models.Hotel{
		Name:     payload.Name,
		Address:  payload.Address,
		Phone:    payload.Phone,
		Email:    payload.Email,
		Currency: payload.Currency,
		Timezone: payload.Timezone,
	}
	if err := ctrl.CatalogSvc.CreateHotel(&hotel); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload hotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	hotel := models.Hotel{
		ID:       id,
		Name:     payload.Name,
		Address:  payload.Address,
		Phone:    payload.Phone,
		Email:    payload.Email,
		Currency: payload.Currency,
		Timezone: payload.Timezone,
	}
	if err := ctrl.CatalogSvc.UpdateHotel(&hotel); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.CatalogSvc.DeleteHotel(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
