package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID     uuid.UUID
	Role       enums.RoleName
	MerchantID *uuid.UUID
	IsStaff    bool
	JTI        string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID     uuid.UUID      `json:"user_id"`
	Role       enums.RoleName `json:"role"`
	MerchantID *uuid.UUID     `json:"merchant_id,omitempty"`
	IsStaff    bool           `json:"is_staff,omitempty"`
	jwt.RegisteredClaims
}
