package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the claims carried by bearer tokens from the auth
// provider. UserID is the only claim this service acts on.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}
