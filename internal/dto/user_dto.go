package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// UserProfileResponse is the public projection of a user shown on leaderboards.
type UserProfileResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username,omitempty"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}
