package merchants

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInput carries the fields accepted when onboarding a merchant.
type CreateInput struct {
	Name         string
	ContactEmail string
	ContactPhone string
	Address      string
}

// MerchantView is the projection returned by merchant endpoints.
type MerchantView struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	ContactEmail   string          `json:"contactEmail"`
	ContactPhone   string          `json:"contactPhone"`
	Address        string          `json:"address"`
	IsActive       bool            `json:"isActive"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// MerchantList wraps a page of merchants with its metadata.
type MerchantList struct {
	Merchants []MerchantView
	Total     int64
}
