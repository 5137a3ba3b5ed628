package couriers

import (
	"time"

	"github.com/google/uuid"
)

// CourierView is one courier row annotated with their active workload.
type CourierView struct {
	ID             uuid.UUID        `json:"id"`
	FullName       string           `json:"fullName"`
	Email          string           `json:"email"`
	PhoneNumber    *string          `json:"phoneNumber,omitempty"`
	IsActive       bool             `json:"isActive"`
	TotalOrders    int64            `json:"totalOrders"`
	OrdersByStatus map[string]int64 `json:"ordersByStatus"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// CourierList wraps a page of couriers with its total.
type CourierList struct {
	Couriers []CourierView
	Total    int64
}
