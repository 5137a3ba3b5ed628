package transactions

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInput carries the fields accepted when recording a transaction.
type CreateInput struct {
	MerchantID    uuid.UUID
	OrderID       uuid.UUID
	Amount        decimal.Decimal
	PaymentMethod string
	CardNumber    *string
	StatusName    string
}

// UpdateInput is the sparse amendment payload. Nil fields are untouched;
// non-nil fields are compared against the stored values and only real
// changes are persisted.
type UpdateInput struct {
	TransactionID uuid.UUID
	MerchantID    uuid.UUID
	OrderID       uuid.UUID

	Amount        *decimal.Decimal
	PaymentMethod *string
	CardNumber    *string
	Status        *string
}

// Change describes one amended field, old and new values string-normalized.
type Change struct {
	Field    string `json:"field"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// TransactionView is the projection returned by transaction endpoints.
type TransactionView struct {
	ID            uuid.UUID       `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	CardNumber    *string         `json:"cardNumber,omitempty"`
	Status        string          `json:"status"`
	MerchantID    uuid.UUID       `json:"merchantId"`
	OrderID       uuid.UUID       `json:"orderId"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// HistoryView is one audit row on a transaction detail.
type HistoryView struct {
	ID           uuid.UUID `json:"id"`
	FieldChanged string    `json:"fieldChanged"`
	OldValue     string    `json:"oldValue"`
	NewValue     string    `json:"newValue"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TransactionDetail is a transaction together with its audit trail,
// newest history rows first.
type TransactionDetail struct {
	TransactionView
	History []HistoryView `json:"history"`
}

// UpdateResult reports the amended transaction and what actually changed.
type UpdateResult struct {
	Transaction TransactionView `json:"transaction"`
	Changes     []Change        `json:"changes"`
}

// TransactionList wraps a page of transactions with its total.
type TransactionList struct {
	Transactions []TransactionView
	Total        int64
}
