package middleware

import (
	"net/http"
	"strings"

	"hotel-booking-admin/services"
	"hotel-booking-admin/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth parses the bearer token and stores the admin id in the context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		adminID, err := services.AdminIDFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}

// RequirePermission gates a route on one permission string. All role logic lives
// in PolicyService; handlers never check role names themselves.
func RequirePermission(policy *services.PolicyService, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("adminID")
		if !exists {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			c.Abort()
			return
		}
		adminID, _ := v.(uint)

		allowed, err := policy.Can(adminID, permission)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to check permissions")
			c.Abort()
			return
		}
		if !allowed {
			utils.JSONError(c, http.StatusForbidden, "permission denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
