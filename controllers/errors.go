package controllers

import (
	"net/http"
	"strings"

	"hotel-booking-admin/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinel errors onto HTTP statuses. Read
// failures surface as 500s — never as empty results.
func respondServiceError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not_found"):
		utils.JSONError(c, http.StatusNotFound, msg)
	case strings.HasPrefix(msg, "validation:"):
		utils.JSONError(c, http.StatusBadRequest, msg)
	case strings.Contains(msg, "invalid_credentials"), strings.Contains(msg, "invalid_token"):
		utils.JSONError(c, http.StatusUnauthorized, msg)
	case strings.Contains(msg, "booking_cancelled"), strings.Contains(msg, "already_cancelled"), strings.Contains(msg, "username_taken"):
		utils.JSONError(c, http.StatusConflict, msg)
	default:
		utils.JSONError(c, http.StatusInternalServerError, msg)
	}
}
