package repositories

import (
	"fmt"

	"github.com/SanmaySarada/CardGeniusMVP/internal/models"

	"gorm.io/gorm"
)

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(card *models.Card) error {
	if err := r.db.Create(card).Error; err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

func (r *cardRepository) GetByID(id uint) (*models.Card, error) {
	var card models.Card
	if err := r.db.First(&card, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) ListByUser(userID uint) ([]models.Card, error) {
	var cards []models.Card
	err := r.db.
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

func (r *cardRepository) Update(card *models.Card) error {
	if err := r.db.Save(card).Error; err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}
	return nil
}

func (r *cardRepository) Delete(userID, id uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Card{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (r *cardRepository) SetDefault(userID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Card{}).
			Where("user_id = ? AND id = ?", userID, id).
			Update("is_default", true)
		if result.Error != nil {
			return fmt.Errorf("failed to set default card: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCardNotFound
		}

		// Clearing the rest inside the same transaction keeps the
		// at-most-one-default invariant observable at every point.
		err := tx.Model(&models.Card{}).
			Where("user_id = ? AND id <> ?", userID, id).
			Update("is_default", false).Error
		if err != nil {
			return fmt.Errorf("failed to clear default flags: %w", err)
		}
		return nil
	})
}
