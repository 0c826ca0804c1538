package controllers

import (
	"net/http"

	"hotel-booking-admin/services"
	"hotel-booking-admin/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminSvc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{AdminSvc: svc}
}

type createAdminPayload struct {
	FullName string `json:"full_name"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	RoleID   uint   `json:"role_id"`
}

type assignRolePayload struct {
	RoleID uint `json:"role_id" binding:"required"`
}

func (ctrl *AdminController) GetAdmins(c *gin.Context) {
	admins, err := ctrl.AdminSvc.ListAdmins()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admins)
}

func (ctrl *AdminController) CreateAdmin(c *gin.Context) {
	var payload createAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	admin, err := ctrl.AdminSvc.CreateAdmin(payload.FullName, payload.Username, payload.Password, payload.RoleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, admin)
}

func (ctrl *AdminController) DeleteAdmin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.AdminSvc.DeleteAdmin(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (ctrl *AdminController) AssignRole(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload assignRolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if err := ctrl.AdminSvc.AssignRole(id, payload.RoleID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"admin_id": id, "role_id": payload.RoleID})
}
