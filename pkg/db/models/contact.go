package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is an inbound lead-capture submission from the public site.
type Contact struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	BusinessName string    `gorm:"column:business_name;not null"`
	ContactName  string    `gorm:"column:contact_name;not null"`
	Email        string    `gorm:"column:email;not null"`
	Phone        string    `gorm:"column:phone;not null"`
	BusinessType string    `gorm:"column:business_type;not null"`
	DriversCount int       `gorm:"column:drivers_count;not null;default:0"`
	Message      string    `gorm:"column:message;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
