package wallet

import (
	"context"
	"fmt"
	"log"

	"github.com/SanmaySarada/CardGeniusMVP/internal/models"
	"github.com/SanmaySarada/CardGeniusMVP/internal/repositories"

	"github.com/google/uuid"
)

const defaultGradient = "blue"

type service struct {
	cards     repositories.CardRepository
	banks     repositories.BankConnectionRepository
	locations repositories.LocationRepository
	cache     Cache
}

// NewService creates the wallet service. Cache may be nil.
func NewService(
	cards repositories.CardRepository,
	banks repositories.BankConnectionRepository,
	locations repositories.LocationRepository,
	cache Cache,
) Service {
	if cards == nil {
		panic("card repository is required")
	}
	if banks == nil {
		panic("bank connection repository is required")
	}
	if locations == nil {
		panic("location repository is required")
	}
	return &service{
		cards:     cards,
		banks:     banks,
		locations: locations,
		cache:     cache,
	}
}

func (s *service) ListCards(ctx context.Context, userID uint) ([]models.Card, error) {
	if s.cache != nil {
		if cards, found, err := s.cache.GetCards(ctx, userID); err == nil && found {
			return cards, nil
		}
	}

	cards, err := s.cards.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.CacheCards(ctx, userID, cards); err != nil {
			log.Printf("failed to cache cards for user %d: %v", userID, err)
		}
	}
	return cards, nil
}

func (s *service) AddCard(ctx context.Context, userID uint, input models.CreateCardInput) (*models.Card, error) {
	if input.CardName == "" {
		return nil, ErrInvalidCardName
	}
	if input.BankName == "" {
		return nil, ErrInvalidBankName
	}
	if input.Gradient == "" {
		input.Gradient = defaultGradient
	}

	existing, err := s.cards.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	card := &models.Card{
		UserID:   userID,
		TokenID:  "tok_" + uuid.NewString(),
		Brand:    input.Brand,
		BankName: input.BankName,
		CardName: input.CardName,
		Gradient: input.Gradient,
		// The first card in the wallet becomes the default.
		IsDefault: len(existing) == 0,
	}

	if err := s.cards.Create(card); err != nil {
		return nil, err
	}

	s.invalidateCards(ctx, userID)
	return card, nil
}

func (s *service) DeleteCard(ctx context.Context, userID, cardID uint) error {
	if err := s.cards.Delete(userID, cardID); err != nil {
		if err == repositories.ErrCardNotFound {
			return ErrCardNotFound
		}
		return err
	}

	s.invalidateCards(ctx, userID)
	return nil
}

func (s *service) SetDefaultCard(ctx context.Context, userID, cardID uint) error {
	if err := s.cards.SetDefault(userID, cardID); err != nil {
		if err == repositories.ErrCardNotFound {
			return ErrCardNotFound
		}
		return err
	}

	s.invalidateCards(ctx, userID)
	return nil
}

func (s *service) DefaultCard(ctx context.Context, userID uint) (*models.Card, error) {
	cards, err := s.ListCards(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		if cards[i].IsDefault {
			return &cards[i], nil
		}
	}
	return nil, ErrNoDefaultCard
}

func (s *service) CardNames(ctx context.Context, userID uint) ([]string, error) {
	cards, err := s.ListCards(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.CardName
	}
	return names, nil
}

// ScanCard simulates a card scan. Real scanning would call a card
// scanning / tokenization provider; this build always recognizes the same
// demo card with a fresh token.
func (s *service) ScanCard(ctx context.Context) models.CardScanResult {
	return models.CardScanResult{
		Brand:    "visa",
		BankName: "Chase",
		CardName: "Chase Freedom Flex",
		Gradient: defaultGradient,
		TokenID:  "tok_" + uuid.NewString(),
	}
}

// ConnectBank simulates linking a bank account: it only records the flag.
func (s *service) ConnectBank(ctx context.Context, userID uint, bankName string) (*models.BankConnection, error) {
	if bankName == "" {
		return nil, ErrInvalidBankName
	}

	conn := &models.BankConnection{
		UserID:    userID,
		BankName:  bankName,
		Connected: true,
	}
	if err := s.banks.Upsert(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func (s *service) BankConnection(ctx context.Context, userID uint) (*models.BankConnection, error) {
	return s.banks.GetByUser(userID)
}

func (s *service) UpdateLocation(ctx context.Context, userID uint, lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return ErrInvalidCoordinate
	}
	return s.locations.Upsert(&models.LocationPing{
		UserID: userID,
		Lat:    lat,
		Lng:    lng,
	})
}

func (s *service) LastLocation(ctx context.Context, userID uint) (*models.LocationPing, error) {
	ping, err := s.locations.GetByUser(userID)
	if err != nil {
		if err == repositories.ErrLocationNotFound {
			return nil, ErrLocationUnknown
		}
		return nil, err
	}
	return ping, nil
}

func (s *service) invalidateCards(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCards(ctx, userID); err != nil {
		log.Printf("failed to invalidate card cache for user %d: %v", userID, err)
	}
}
