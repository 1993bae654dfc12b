package repositories

import "github.com/SanmaySarada/CardGeniusMVP/internal/models"

// CardRepository persists wallet card records.
type CardRepository interface {
	Create(card *models.Card) error
	GetByID(id uint) (*models.Card, error)
	// ListByUser returns the user's cards, newest first. This order is the
	// tie-break order the recommendation engine sees.
	ListByUser(userID uint) ([]models.Card, error)
	Update(card *models.Card) error
	Delete(userID, id uint) error
	// SetDefault marks one card as the default and clears the flag on every
	// other card of the user, atomically.
	SetDefault(userID, id uint) error
}
