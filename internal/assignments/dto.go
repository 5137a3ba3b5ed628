package assignments

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentView is the projection returned after assigning a courier.
type AssignmentView struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"orderId"`
	UserID     uuid.UUID `json:"userId"`
	IsActive   bool      `json:"isActive"`
	AssignedAt time.Time `json:"assignedAt"`
}
