package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"
)

const confirmationCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EnvOrDefault returns the ENV value or the fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateConfirmationID builds a human-typeable booking reference such as
// "BK483920XQ": a time-based digit block plus a short random suffix. Callers
// retry on the (unlikely) unique-index collision.
func GenerateConfirmationID() (string, error) {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	suffix, err := randomFromCharset(2)
	if err != nil {
		return "", err
	}
	return "BK" + millis + suffix, nil
}

// randomFromCharset draws n chars from A-Z0-9 using crypto/rand with rand.Int to
// avoid modulo bias.
func randomFromCharset(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(confirmationCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(confirmationCharset[num.Int64()])
	}
	return sb.String(), nil
}
