package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService validates the access tokens issued by the platform's session
// layer (out of core scope) and mints tokens for tooling and tests.
type TokenService interface {
	// GenerateAccessToken creates a signed access token carrying the user id,
	// wallet address hint, and roles.
	GenerateAccessToken(userID uuid.UUID, walletAddress string, roles []string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
