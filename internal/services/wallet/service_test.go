package wallet

import (
	"context"
	"strings"
	"testing"

	"github.com/SanmaySarada/CardGeniusMVP/internal/models"
	"github.com/SanmaySarada/CardGeniusMVP/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCardRepo struct {
	mock.Mock
}

func (m *MockCardRepo) Create(card *models.Card) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockCardRepo) GetByID(id uint) (*models.Card, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepo) ListByUser(userID uint) ([]models.Card, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockCardRepo) Update(card *models.Card) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockCardRepo) Delete(userID, id uint) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

func (m *MockCardRepo) SetDefault(userID, id uint) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

type MockBankRepo struct {
	mock.Mock
}

func (m *MockBankRepo) Upsert(conn *models.BankConnection) error {
	args := m.Called(conn)
	return args.Error(0)
}

func (m *MockBankRepo) GetByUser(userID uint) (*models.BankConnection, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BankConnection), args.Error(1)
}

type MockLocationRepo struct {
	mock.Mock
}

func (m *MockLocationRepo) Upsert(ping *models.LocationPing) error {
	args := m.Called(ping)
	return args.Error(0)
}

func (m *MockLocationRepo) GetByUser(userID uint) (*models.LocationPing, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LocationPing), args.Error(1)
}

func newTestService(cards *MockCardRepo, banks *MockBankRepo, locations *MockLocationRepo) Service {
	return NewService(cards, banks, locations, nil)
}

func TestAddCard(t *testing.T) {
	tests := []struct {
		name        string
		input       models.CreateCardInput
		existing    []models.Card
		wantErr     error
		wantDefault bool
	}{
		{
			name:        "first card becomes default",
			input:       models.CreateCardInput{Brand: "visa", BankName: "Chase", CardName: "Freedom Unlimited"},
			existing:    []models.Card{},
			wantDefault: true,
		},
		{
			name:        "later cards are not default",
			input:       models.CreateCardInput{Brand: "amex", BankName: "American Express", CardName: "Gold Card"},
			existing:    []models.Card{{ID: 1, CardName: "Freedom Unlimited", IsDefault: true}},
			wantDefault: false,
		},
		{
			name:    "missing card name",
			input:   models.CreateCardInput{BankName: "Chase"},
			wantErr: ErrInvalidCardName,
		},
		{
			name:    "missing bank name",
			input:   models.CreateCardInput{CardName: "Freedom Unlimited"},
			wantErr: ErrInvalidBankName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := new(MockCardRepo)
			if tt.wantErr == nil {
				cards.On("ListByUser", uint(1)).Return(tt.existing, nil)
				cards.On("Create", mock.AnythingOfType("*models.Card")).Return(nil)
			}

			svc := newTestService(cards, new(MockBankRepo), new(MockLocationRepo))
			card, err := svc.AddCard(context.Background(), 1, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDefault, card.IsDefault)
			assert.Equal(t, tt.input.CardName, card.CardName)
			assert.True(t, strings.HasPrefix(card.TokenID, "tok_"))
			cards.AssertExpectations(t)
		})
	}
}

func TestSetDefaultCard(t *testing.T) {
	cards := new(MockCardRepo)
	cards.On("SetDefault", uint(1), uint(7)).Return(nil)

	svc := newTestService(cards, new(MockBankRepo), new(MockLocationRepo))
	require.NoError(t, svc.SetDefaultCard(context.Background(), 1, 7))
	cards.AssertExpectations(t)
}

func TestSetDefaultCard_NotFound(t *testing.T) {
	cards := new(MockCardRepo)
	cards.On("SetDefault", uint(1), uint(99)).Return(repositories.ErrCardNotFound)

	svc := newTestService(cards, new(MockBankRepo), new(MockLocationRepo))
	assert.ErrorIs(t, svc.SetDefaultCard(context.Background(), 1, 99), ErrCardNotFound)
}

func TestDefaultCard(t *testing.T) {
	cards := new(MockCardRepo)
	cards.On("ListByUser", uint(1)).Return([]models.Card{
		{ID: 2, CardName: "Gold Card"},
		{ID: 1, CardName: "Freedom Unlimited", IsDefault: true},
	}, nil)

	svc := newTestService(cards, new(MockBankRepo), new(MockLocationRepo))
	card, err := svc.DefaultCard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), card.ID)
}

func TestDefaultCard_NoneSet(t *testing.T) {
	cards := new(MockCardRepo)
	cards.On("ListByUser", uint(1)).Return([]models.Card{{ID: 2, CardName: "Gold Card"}}, nil)

	svc := newTestService(cards, new(MockBankRepo), new(MockLocationRepo))
	_, err := svc.DefaultCard(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoDefaultCard)
}

func TestCardNames_PreservesOrder(t *testing.T) {
	cards := new(MockCardRepo)
	cards.On("ListByUser", uint(1)).Return([]models.Card{
		{ID: 3, CardName: "it Cash Back"},
		{ID: 2, CardName: "Gold Card"},
		{ID: 1, CardName: "Freedom Unlimited"},
	}, nil)

	svc := newTestService(cards, new(MockBankRepo), new(MockLocationRepo))
	names, err := svc.CardNames(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"it Cash Back", "Gold Card", "Freedom Unlimited"}, names)
}

func TestScanCard(t *testing.T) {
	svc := newTestService(new(MockCardRepo), new(MockBankRepo), new(MockLocationRepo))

	first := svc.ScanCard(context.Background())
	second := svc.ScanCard(context.Background())

	assert.Equal(t, "Chase Freedom Flex", first.CardName)
	assert.True(t, strings.HasPrefix(first.TokenID, "tok_"))
	assert.NotEqual(t, first.TokenID, second.TokenID)
}

func TestConnectBank(t *testing.T) {
	banks := new(MockBankRepo)
	banks.On("Upsert", mock.MatchedBy(func(c *models.BankConnection) bool {
		return c.UserID == 1 && c.BankName == "Chase" && c.Connected
	})).Return(nil)

	svc := newTestService(new(MockCardRepo), banks, new(MockLocationRepo))
	conn, err := svc.ConnectBank(context.Background(), 1, "Chase")
	require.NoError(t, err)
	assert.True(t, conn.Connected)
	banks.AssertExpectations(t)

	_, err = svc.ConnectBank(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrInvalidBankName)
}

func TestUpdateLocation(t *testing.T) {
	locations := new(MockLocationRepo)
	locations.On("Upsert", mock.MatchedBy(func(p *models.LocationPing) bool {
		return p.UserID == 1 && p.Lat == 37.7749 && p.Lng == -122.4194
	})).Return(nil)

	svc := newTestService(new(MockCardRepo), new(MockBankRepo), locations)
	require.NoError(t, svc.UpdateLocation(context.Background(), 1, 37.7749, -122.4194))
	locations.AssertExpectations(t)

	assert.ErrorIs(t, svc.UpdateLocation(context.Background(), 1, 91, 0), ErrInvalidCoordinate)
	assert.ErrorIs(t, svc.UpdateLocation(context.Background(), 1, 0, -181), ErrInvalidCoordinate)
}

func TestLastLocation_Unknown(t *testing.T) {
	locations := new(MockLocationRepo)
	locations.On("GetByUser", uint(1)).Return(nil, repositories.ErrLocationNotFound)

	svc := newTestService(new(MockCardRepo), new(MockBankRepo), locations)
	_, err := svc.LastLocation(context.Background(), 1)
	assert.ErrorIs(t, err, ErrLocationUnknown)
}
