package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInput carries the fields accepted when a merchant creates an order.
type CreateInput struct {
	MerchantID       uuid.UUID
	Title            string
	Amount           decimal.Decimal
	CustomerName     string
	AddressText      string
	AddressLatitude  *float64
	AddressLongitude *float64
	AdditionalNotes  *string
	StatusName       string
}

// OrderView is the projection returned by order listings.
type OrderView struct {
	ID               uuid.UUID       `json:"id"`
	Title            string          `json:"title"`
	Amount           decimal.Decimal `json:"amount"`
	CustomerName     string          `json:"customerName"`
	AddressText      string          `json:"addressText"`
	AddressLatitude  *float64        `json:"addressLatitude,omitempty"`
	AddressLongitude *float64        `json:"addressLongitude,omitempty"`
	AdditionalNotes  *string         `json:"additionalNotes,omitempty"`
	Status           string          `json:"status"`
	MerchantID       uuid.UUID       `json:"merchantId"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// AssignmentView is the per-courier slice of an order detail.
type AssignmentView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	UserFullName string    `json:"userFullName"`
	UserEmail    string    `json:"userEmail"`
	IsActive     bool      `json:"isActive"`
	AssignedAt   time.Time `json:"assignedAt"`
}

// OrderDetail is a single order together with its assignment history.
type OrderDetail struct {
	OrderView
	Assignments []AssignmentView `json:"assignments"`
}

// OrderList wraps a page of orders with its total.
type OrderList struct {
	Orders []OrderView
	Total  int64
}
