package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
)

// ProfileView is the projection returned by the profile endpoints.
type ProfileView struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"fullName"`
	PhoneNumber   *string    `json:"phoneNumber,omitempty"`
	Role          string     `json:"role"`
	MerchantID    *uuid.UUID `json:"merchantId,omitempty"`
	IsStaff       bool       `json:"isStaff"`
	EmailVerified bool       `json:"emailVerified"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// UpdateProfileInput carries the mutable profile fields. Nil means untouched.
type UpdateProfileInput struct {
	FullName    *string
	PhoneNumber *string
}

// ChangePasswordInput carries a password rotation request.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// ToProfileView projects a user row onto the profile shape.
func ToProfileView(u *models.User) ProfileView {
	view := ProfileView{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		PhoneNumber:   u.PhoneNumber,
		MerchantID:    u.MerchantID,
		IsStaff:       u.IsStaff,
		EmailVerified: u.EmailVerified,
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
	}
	if u.Role != nil {
		view.Role = u.Role.Name
	}
	return view
}
