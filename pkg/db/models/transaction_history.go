package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionHistory is an append-only audit row recording a single field
// change on a transaction. Values are stored as strings so every field type
// serializes the same way.
type TransactionHistory struct {
	ID            uuid.UUID    `gorm:"column:id;type:uuid;primaryKey"`
	TransactionID uuid.UUID    `gorm:"column:transaction_id;type:uuid;not null;index"`
	Transaction   *Transaction `gorm:"foreignKey:TransactionID"`

	FieldChanged string `gorm:"column:field_changed;not null"`
	OldValue     string `gorm:"column:old_value;not null"`
	NewValue     string `gorm:"column:new_value;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (h *TransactionHistory) TableName() string { return "transaction_histories" }

func (h *TransactionHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
