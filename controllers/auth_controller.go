package controllers

import (
	"net/http"

	"hotel-booking-admin/services"
	"hotel-booking-admin/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AdminSvc *services.AdminService
}

func NewAuthController(svc *services.AdminService) *AuthController {
	return &AuthController{AdminSvc: svc}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	admin, err := ctrl.AdminSvc.Authenticate(payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := services.IssueToken(admin)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"full_name": admin.FullName,
			"username":  admin.Username,
		},
	})
}
