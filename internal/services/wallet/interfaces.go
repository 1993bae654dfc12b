package wallet

import (
	"context"

	"github.com/SanmaySarada/CardGeniusMVP/internal/models"
)

// Service manages the user's stored cards, bank link, and last-known
// location. The recommendation engine only ever sees the projection
// returned by CardNames.
type Service interface {
	// Card operations
	ListCards(ctx context.Context, userID uint) ([]models.Card, error)
	AddCard(ctx context.Context, userID uint, input models.CreateCardInput) (*models.Card, error)
	DeleteCard(ctx context.Context, userID, cardID uint) error
	SetDefaultCard(ctx context.Context, userID, cardID uint) error
	DefaultCard(ctx context.Context, userID uint) (*models.Card, error)

	// CardNames projects the card list to matrix join keys, preserving
	// list order.
	CardNames(ctx context.Context, userID uint) ([]string, error)

	// ScanCard simulates the card scanning flow.
	ScanCard(ctx context.Context) models.CardScanResult

	// Bank connection (mocked)
	ConnectBank(ctx context.Context, userID uint, bankName string) (*models.BankConnection, error)
	BankConnection(ctx context.Context, userID uint) (*models.BankConnection, error)

	// Location
	UpdateLocation(ctx context.Context, userID uint, lat, lng float64) error
	LastLocation(ctx context.Context, userID uint) (*models.LocationPing, error)
}

// Cache is the subset of the cache service the wallet needs. A nil cache
// disables caching.
type Cache interface {
	CacheCards(ctx context.Context, userID uint, cards []models.Card) error
	GetCards(ctx context.Context, userID uint) ([]models.Card, bool, error)
	InvalidateCards(ctx context.Context, userID uint) error
}
