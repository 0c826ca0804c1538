package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-admin/models"
	"hotel-booking-admin/utils"

	"github.com/dgrijalva/jwt-go"
)

const tokenTTL = 24 * time.Hour

func jwtSecret() []byte {
	return []byte(utils.EnvOrDefault("JWT_SECRET", "dev-secret-change-me"))
}

// IssueToken signs a bearer token for an authenticated admin.
func IssueToken(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// AdminIDFromToken verifies the signature and expiry and returns the admin id.
func AdminIDFromToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid_token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid_token")
	}
	adminID, ok := claims["admin_id"].(float64)
	if !ok || adminID <= 0 {
		return 0, errors.New("invalid_token")
	}
	return uint(adminID), nil
}
