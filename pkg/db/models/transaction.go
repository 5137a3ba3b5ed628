package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
)

// Transaction records a payment against an order. BalanceAfter is a snapshot
// taken at creation time and is never recomputed on amendment.
type Transaction struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	Amount        decimal.Decimal     `gorm:"column:amount;type:numeric;not null"`
	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;not null"`
	BalanceAfter  decimal.Decimal     `gorm:"column:balance_after;type:numeric;not null"`
	CardNumber    *string             `gorm:"column:card_number"`

	TransactionStatusID uuid.UUID `gorm:"column:transaction_status_id;type:uuid;not null"`
	TransactionStatus   *Status   `gorm:"foreignKey:TransactionStatusID"`
	MerchantID          uuid.UUID `gorm:"column:merchant_id;type:uuid;not null;index"`
	Merchant            *Merchant `gorm:"foreignKey:MerchantID"`
	OrderID             uuid.UUID `gorm:"column:order_id;type:uuid;not null;index"`
	Order               *Order    `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
