package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// CreateJWTToken mints an access token for the shared-secret scheme. The
// service itself only verifies tokens; this is used by operators and tests.
func CreateJWTToken(jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}
