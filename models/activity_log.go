package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ActivityLog records a mutating dashboard action (filter writes,
// purchase-order generation, exports sent by email).
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;index"`
	UserEmail    string         `json:"user_email"`
	Action       string         `json:"action" gorm:"index"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Payload      datatypes.JSON `json:"payload,omitempty" gorm:"type:jsonb"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "dashboard_activity_logs"
}
