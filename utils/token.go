package utils

import (
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// JwtSecret returns the HS256 signing key, reading JWT_SECRET on first use so
// tests and tooling can run without a populated environment.
func JwtSecret() []byte {
	if jwtSecret == nil {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Println("JWT_SECRET is not set; using an insecure development secret")
			secret = "dev-secret-change-me"
		}
		jwtSecret = []byte(secret)
	}
	return jwtSecret
}

// GenerateAccessToken creates a JWT for a signed-in broker, valid for 72 hours.
func GenerateAccessToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	})

	return token.SignedString(JwtSecret())
}
