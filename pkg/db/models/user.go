package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the canonical identity entity. Couriers are users whose role is
// named "Driver"; admins carry IsStaff.
type User struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	FullName     string    `gorm:"column:full_name;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`

	IsActive      bool    `gorm:"column:is_active;not null;default:true"`
	IsStaff       bool    `gorm:"column:is_staff;not null;default:false"`
	EmailVerified bool    `gorm:"column:email_verified;not null;default:false"`
	PhoneNumber   *string `gorm:"column:phone_number"`

	RoleID     *uuid.UUID `gorm:"column:role_id;type:uuid"`
	Role       *Role      `gorm:"foreignKey:RoleID"`
	MerchantID *uuid.UUID `gorm:"column:merchant_id;type:uuid"`
	Merchant   *Merchant  `gorm:"foreignKey:MerchantID"`

	FailedLoginAttempts int        `gorm:"column:failed_login_attempts;not null;default:0"`
	LastFailedLogin     *time.Time `gorm:"column:last_failed_login"`
	LastLogin           *time.Time `gorm:"column:last_login"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
