package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs a 5 hour HS256 token carrying the user id.
func GenerateJWT(userID uint, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(5 * time.Hour).Unix(),
	})

	return token.SignedString([]byte(secret))
}
