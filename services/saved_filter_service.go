package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
)

var ErrSavedFilterNotFound = errors.New("saved filter not found")

// SavedFilterService stores named filter sets per user.
type SavedFilterService struct {
	db *gorm.DB
}

var savedFilterService *SavedFilterService

func GetSavedFilterService() *SavedFilterService {
	if savedFilterService == nil {
		savedFilterService = &SavedFilterService{db: config.DB}
	}
	return savedFilterService
}

// List returns the user's saved filters, newest first.
func (s *SavedFilterService) List(ctx context.Context, userID uuid.UUID) ([]models.SavedFilter, error) {
	var filters []models.SavedFilter
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&filters).Error
	if err != nil {
		return nil, err
	}
	return filters, nil
}

// Save stores a filter set under a name. Saving the same name again
// replaces the criteria.
func (s *SavedFilterService) Save(ctx context.Context, userID uuid.UUID, name string, set models.FilterSet) (models.SavedFilter, error) {
	criteria, err := json.Marshal(set)
	if err != nil {
		return models.SavedFilter{}, fmt.Errorf("encode criteria: %w", err)
	}

	var existing models.SavedFilter
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&existing).Error
	if err == nil {
		existing.Criteria = criteria
		if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return models.SavedFilter{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SavedFilter{}, err
	}

	filter := models.SavedFilter{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Criteria: criteria,
	}
	if err := s.db.WithContext(ctx).Create(&filter).Error; err != nil {
		return models.SavedFilter{}, err
	}
	return filter, nil
}

// Load decodes one saved filter back into a filter set.
func (s *SavedFilterService) Load(ctx context.Context, userID, filterID uuid.UUID) (models.FilterSet, error) {
	var filter models.SavedFilter
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", filterID, userID).
		First(&filter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FilterSet{}, ErrSavedFilterNotFound
	}
	if err != nil {
		return models.FilterSet{}, err
	}

	var set models.FilterSet
	if err := json.Unmarshal(filter.Criteria, &set); err != nil {
		return models.FilterSet{}, fmt.Errorf("decode criteria: %w", err)
	}
	return set, nil
}

// Delete removes one saved filter.
func (s *SavedFilterService) Delete(ctx context.Context, userID, filterID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", filterID, userID).
		Delete(&models.SavedFilter{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedFilterNotFound
	}
	return nil
}
