package repositories

import (
	"fmt"

	"github.com/SanmaySarada/CardGeniusMVP/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository persists card-suggestion notifications.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByUser(userID uint, limit int) ([]models.Notification, error)
	MarkRead(userID, id uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(n *models.Notification) error {
	if err := r.db.Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var notifications []models.Notification
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(userID, id uint) error {
	result := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
