package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
)

// Status is a lookup row shared by orders and transactions. The (name, type)
// pair is unique; callers resolve statuses by that pair, never by bare name.
type Status struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Name      string           `gorm:"column:name;not null;uniqueIndex:idx_statuses_name_type"`
	Type      enums.StatusType `gorm:"column:type;not null;uniqueIndex:idx_statuses_name_type"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
}

func (s *Status) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
