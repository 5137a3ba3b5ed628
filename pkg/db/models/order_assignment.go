package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderAssignment links an order to a courier. Rows are never deleted:
// reassignment deactivates every active row for the order and inserts a new
// active one, so the full assignment history survives.
type OrderAssignment struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"column:order_id;type:uuid;not null;index"`
	Order   *Order    `gorm:"foreignKey:OrderID"`
	UserID  uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	User    *User     `gorm:"foreignKey:UserID"`

	IsActive   bool      `gorm:"column:is_active;not null;default:true"`
	AssignedAt time.Time `gorm:"column:assigned_at;autoCreateTime"`
}

func (a *OrderAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
