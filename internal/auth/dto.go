package auth

import (
	"github.com/google/uuid"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/users"
)

// RegisterInput carries a signup request.
type RegisterInput struct {
	Email                string
	Password             string
	PasswordConfirmation string
	FullName             string
	PhoneNumber          *string
	RoleName             string
	MerchantID           *uuid.UUID
}

// LoginInput carries a credentials check.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput pairs the expired access token with its refresh token.
type RefreshInput struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult is the session payload returned by register, login and refresh.
type AuthResult struct {
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken"`
	User         users.ProfileView `json:"user"`
}
