package services

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
)

// ActivityLogService records mutating dashboard actions. Writes are
// fire-and-forget, a failed insert only logs.
type ActivityLogService struct {
	db *gorm.DB
}

var activityLogService *ActivityLogService

func GetActivityLogService() *ActivityLogService {
	if activityLogService == nil {
		activityLogService = &ActivityLogService{db: config.DB}
	}
	return activityLogService
}

type ActivityEntry struct {
	UserID       uuid.UUID
	UserEmail    string
	Action       string
	ResourceType string
	ResourceID   string
	Status       string
	ErrorMessage string
	Payload      any
	IPAddress    string
	UserAgent    string
}

// Log writes one activity row in the background.
func (s *ActivityLogService) Log(entry ActivityEntry) {
	go func() {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		record := models.ActivityLog{
			ID:           uuid.New(),
			UserID:       entry.UserID,
			UserEmail:    entry.UserEmail,
			Action:       entry.Action,
			ResourceType: entry.ResourceType,
			ResourceID:   entry.ResourceID,
			Status:       entry.Status,
			ErrorMessage: entry.ErrorMessage,
			IPAddress:    entry.IPAddress,
			UserAgent:    entry.UserAgent,
		}
		if entry.Payload != nil {
			if data, err := json.Marshal(entry.Payload); err == nil {
				record.Payload = data
			}
		}

		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			log.Printf("[activity_log] failed to record %s: %v", entry.Action, err)
		}
	}()
}

// Recent lists the latest activity rows, newest first.
func (s *ActivityLogService) Recent(limit int) ([]models.ActivityLog, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var logs []models.ActivityLog
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
