package repository

import (
	"context"
	"errors"

	"kitchenswipe/internal/models"

	"gorm.io/gorm"
)

type SwipeHistoryRepository interface {
	Create(ctx context.Context, entry *models.SwipeHistory) error
	FindLatestBySession(ctx context.Context, sessionID string) (*models.SwipeHistory, error)
	Delete(ctx context.Context, id uint) error
}

type swipeHistoryRepository struct {
	db *gorm.DB
}

func NewSwipeHistoryRepository(db *gorm.DB) SwipeHistoryRepository {
	return &swipeHistoryRepository{db}
}

func (r *swipeHistoryRepository) Create(ctx context.Context, entry *models.SwipeHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindLatestBySession returns nil, nil when the session has no history.
func (r *swipeHistoryRepository) FindLatestBySession(ctx context.Context, sessionID string) (*models.SwipeHistory, error) {
	var entry models.SwipeHistory
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id DESC").
		Limit(1).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *swipeHistoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SwipeHistory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
