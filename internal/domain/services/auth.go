package services

import (
	"context"
)

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService defines account registration and login
type AuthService interface {
	// Register creates a new account and returns a bearer token
	Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error)

	// Login verifies credentials and returns a bearer token
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
}
