package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens issued by the auth
// service. This service only validates tokens; it never issues them.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating access tokens.
type TokenService interface {
	// ValidateAccessToken checks the validity of a token string and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
