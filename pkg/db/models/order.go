package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a merchant's delivery request. Courier linkage lives in
// OrderAssignment rows, not on the order itself.
type Order struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Title            string          `gorm:"column:title;not null"`
	Amount           decimal.Decimal `gorm:"column:amount;type:numeric;not null"`
	CustomerName     string          `gorm:"column:customer_name;not null"`
	AddressText      string          `gorm:"column:address_text;not null"`
	AddressLatitude  *float64        `gorm:"column:address_latitude"`
	AddressLongitude *float64        `gorm:"column:address_longitude"`

	AdditionalNotes *string `gorm:"column:additional_notes"`

	StatusID   uuid.UUID `gorm:"column:status_id;type:uuid;not null"`
	Status     *Status   `gorm:"foreignKey:StatusID"`
	MerchantID uuid.UUID `gorm:"column:merchant_id;type:uuid;not null"`
	Merchant   *Merchant `gorm:"foreignKey:MerchantID"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
