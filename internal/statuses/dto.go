package statuses

import (
	"github.com/google/uuid"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
)

// StatusView is the projection returned by the registry listing.
type StatusView struct {
	ID   uuid.UUID        `json:"id"`
	Name string           `json:"name"`
	Type enums.StatusType `json:"type"`
}
