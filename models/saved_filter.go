package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SavedFilter is a named filter set a user stored for reuse. The
// criteria live as JSONB so new filter dimensions never need a
// migration.
type SavedFilter struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"user_id" gorm:"type:uuid;index;not null"`
	Name      string         `json:"name" gorm:"not null"`
	Criteria  datatypes.JSON `json:"criteria" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (SavedFilter) TableName() string {
	return "saved_filters"
}
