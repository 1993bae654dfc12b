package repositories

import (
	"fmt"

	"github.com/SanmaySarada/CardGeniusMVP/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LocationRepository persists each user's last-known location. One row per
// user; newer pings overwrite older ones.
type LocationRepository interface {
	Upsert(ping *models.LocationPing) error
	GetByUser(userID uint) (*models.LocationPing, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Upsert(ping *models.LocationPing) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "recorded_at"}),
	}).Create(ping).Error
	if err != nil {
		return fmt.Errorf("failed to upsert location: %w", err)
	}
	return nil
}

func (r *locationRepository) GetByUser(userID uint) (*models.LocationPing, error) {
	var ping models.LocationPing
	if err := r.db.Where("user_id = ?", userID).First(&ping).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &ping, nil
}
