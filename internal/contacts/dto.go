package contacts

import (
	"time"

	"github.com/google/uuid"
)

// CreateInput carries a public lead-capture submission.
type CreateInput struct {
	BusinessName string
	ContactName  string
	Email        string
	Phone        string
	BusinessType string
	DriversCount int
	Message      string
}

// ContactView is the projection returned by contact endpoints.
type ContactView struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"businessName"`
	ContactName  string    `json:"contactName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BusinessType string    `json:"businessType"`
	DriversCount int       `json:"driversCount"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ContactList wraps a page of submissions with its total.
type ContactList struct {
	Contacts []ContactView
	Total    int64
}
