package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RegisterRequest holds the account-creation payload. The NIC number is used
// only for duplicate-registration prevention and is never echoed back.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	NICNumber string `json:"nic_number" validate:"required,min=10,max=12"`
}

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse returns the issued token and basic account info.
type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	IsAdmin     bool      `json:"is_admin"`
	Completed   bool      `json:"profile_completed"`
	IssuedAt    time.Time `json:"issued_at"`
}

// JWTClaims are the claims embedded in access tokens.
type JWTClaims struct {
	UserID  string `json:"uid"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
