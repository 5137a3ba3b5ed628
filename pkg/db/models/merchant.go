package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Merchant represents a business that creates delivery orders and owns the
// running balance that transaction snapshots are taken from.
type Merchant struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name           string          `gorm:"column:name;not null" json:"name"`
	ContactEmail   string          `gorm:"column:contact_email;not null" json:"contactEmail"`
	ContactPhone   string          `gorm:"column:contact_phone;not null" json:"contactPhone"`
	Address        string          `gorm:"column:address;not null" json:"address"`
	IsActive       bool            `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CurrentBalance decimal.Decimal `gorm:"column:current_balance;type:numeric;not null;default:0" json:"currentBalance"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (m *Merchant) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
