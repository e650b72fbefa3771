package utils

import (
	"github.com/golang-jwt/jwt/v5"
	"os"
	"time"
)

// jwtKey is read per call so a secret loaded from .env after process
// start is picked up.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

type Claims struct {
	ProviderID string `json:"provider_id"`
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// CreateToken issues the session token returned to a service provider
// after their application is accepted by the backend.
func CreateToken(providerID string, role string) (string, error) {
	claims := &Claims{
		ProviderID: providerID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
