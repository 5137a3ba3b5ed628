package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is static reference data. RequiresMerchant drives the validation-time
// rule that certain users must be tied to a merchant.
type Role struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name             string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	RequiresMerchant bool      `gorm:"column:requires_merchant;not null;default:true" json:"requiresMerchant"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
