package rewards

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves a fixed CSV payload and counts fetches. failures makes
// the first N fetches fail.
type fakeSource struct {
	csv      string
	fetches  int32
	failures int32
}

func (s *fakeSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	n := atomic.AddInt32(&s.fetches, 1)
	if n <= atomic.LoadInt32(&s.failures) {
		return nil, errors.New("dataset unreachable")
	}
	return io.NopCloser(strings.NewReader(s.csv)), nil
}

const testMatrixCSV = `Card Name,Dining,Restaurants,Gas stations (U.S.),Target,Target (5%),Everywhere,Other purchases
Chase Freedom Unlimited,3,3,0,0,0,1.5,0
Amex Gold,4,4,0,0,0,1,0
Target REDcard,0,0,0,5,5,1,0
Flat Two Percent,0,0,0,0,0,2,0
Other Flat Two,0,0,0,0,0,2,0
Zero Card,0,0,0,0,0,0,0
`

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(&fakeSource{csv: testMatrixCSV}, nil)
}

func TestBestCardForPlace_EndToEnd(t *testing.T) {
	svc := newTestService(t)

	// Brand keyword "chipotle" maps to Dining; type "restaurant" to
	// Restaurants. The 3% Dining entry must beat the 1.5% Everywhere one.
	rec, err := svc.BestCardForPlace(context.Background(),
		"Chipotle Mexican Grill", []string{"restaurant"},
		[]string{"Chase Freedom Unlimited"})
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "Chase Freedom Unlimited", rec.CardName)
	assert.Equal(t, 3.0, rec.RewardRate)
	assert.Equal(t, "Dining", rec.Category)
	assert.Equal(t, "3% Dining • 3% Restaurants", rec.OfferText)
}

func TestBestCardForPlace_MaxAggregationNotSum(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.BestCardForPlace(context.Background(),
		"Chipotle", []string{"restaurant"}, []string{"Amex Gold"})
	require.NoError(t, err)
	require.NotNil(t, rec)

	// Dining 4 and Restaurants 4 and Everywhere 1: max is 4, not 9.
	assert.Equal(t, 4.0, rec.RewardRate)
}

func TestBestCardForPlace_RelatedColumnExpansion(t *testing.T) {
	svc := newTestService(t)

	// Brand category "Target" also pulls in the "Target (5%)" column via
	// case-insensitive substring match.
	rec, err := svc.BestCardForPlace(context.Background(),
		"Target Store #1234", []string{"department_store"},
		[]string{"Target REDcard"})
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, 5.0, rec.RewardRate)
	assert.Equal(t, "Target", rec.Category)
}

func TestBestCardForPlace_TieBreakByWalletOrder(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.BestCardForPlace(context.Background(),
		"Unknown Merchant", []string{"restaurant"},
		[]string{"Flat Two Percent", "Other Flat Two"})
	require.NoError(t, err)
	require.NotNil(t, rec)

	// Both score 2% Everywhere; the first card scanned wins.
	assert.Equal(t, "Flat Two Percent", rec.CardName)

	rec, err = svc.BestCardForPlace(context.Background(),
		"Unknown Merchant", []string{"restaurant"},
		[]string{"Other Flat Two", "Flat Two Percent"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Other Flat Two", rec.CardName)
}

func TestBestCardForPlace_NoRecommendation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name  string
		cards []string
	}{
		{"empty card list", nil},
		{"all cards absent from matrix", []string{"Imaginary Card", "Another Fake"}},
		{"only zero-rate card", []string{"Zero Card"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := svc.BestCardForPlace(context.Background(),
				"Some Diner", []string{"restaurant"}, tt.cards)
			require.NoError(t, err)
			assert.Nil(t, rec)
		})
	}
}

func TestBestCardForPlace_AbsentCardSkippedNotFatal(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.BestCardForPlace(context.Background(),
		"Chipotle", []string{"restaurant"},
		[]string{"Imaginary Card", "Chase Freedom Unlimited"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Chase Freedom Unlimited", rec.CardName)
}

func TestBestCardForPlace_MatrixUnavailable(t *testing.T) {
	src := &fakeSource{csv: testMatrixCSV, failures: 1}
	svc := NewService(src, nil)

	_, err := svc.BestCardForPlace(context.Background(),
		"Chipotle", []string{"restaurant"}, []string{"Amex Gold"})
	assert.ErrorIs(t, err, ErrMatrixUnavailable)

	// Failure is not cached; the next request retries and succeeds.
	rec, err := svc.BestCardForPlace(context.Background(),
		"Chipotle", []string{"restaurant"}, []string{"Amex Gold"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int32(2), atomic.LoadInt32(&src.fetches))
}

func TestLoadMatrix_SingleFlight(t *testing.T) {
	src := &fakeSource{csv: testMatrixCSV}
	svc := NewService(src, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.BestCardForPlace(context.Background(),
				"Chipotle", []string{"restaurant"}, []string{"Amex Gold"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&src.fetches))
}

func TestRecommendationForCategory(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.RecommendationForCategory(context.Background(), "Dining",
		[]string{"Target REDcard", "Amex Gold"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Amex Gold", rec.CardName)
	assert.Equal(t, 4.0, rec.RewardRate)
	assert.Equal(t, "4% Dining", rec.OfferText)

	// Unknown category falls back to the Everywhere rate.
	rec, err = svc.RecommendationForCategory(context.Background(), "Streaming",
		[]string{"Flat Two Percent"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 2.0, rec.RewardRate)
}

func TestRankCardsForPlace(t *testing.T) {
	svc := newTestService(t)

	cards := []string{"Target REDcard", "Chase Freedom Unlimited", "Amex Gold", "Zero Card"}
	ranked, err := svc.RankCardsForPlace(context.Background(),
		"Chipotle", []string{"restaurant"}, cards, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	assert.Equal(t, "Amex Gold", ranked[0].CardName)
	assert.Equal(t, "Chase Freedom Unlimited", ranked[1].CardName)
	assert.Equal(t, "Target REDcard", ranked[2].CardName)
	assert.Equal(t, "Zero Card", ranked[3].CardName)
	assert.Empty(t, ranked[3].OfferText)

	topTwo, err := svc.RankCardsForPlace(context.Background(),
		"Chipotle", []string{"restaurant"}, cards, 2)
	require.NoError(t, err)
	require.Len(t, topTwo, 2)
	assert.Equal(t, "Amex Gold", topTwo[0].CardName)
}

func TestBuildSearchTerms(t *testing.T) {
	all := []string{"Dining", "Fine Dining", "Target", "Target (5%)", "Everywhere"}

	terms := buildSearchTerms([]string{"Dining", "Restaurants"}, all)
	assert.Equal(t, []string{"Dining", "Fine Dining", "Restaurants", "Everywhere", "Other purchases"}, terms)

	// Deduplicated: a category already in the vocabulary appears once.
	terms = buildSearchTerms([]string{"Target"}, all)
	assert.Equal(t, []string{"Target", "Target (5%)", "Everywhere", "Other purchases"}, terms)
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "3", formatRate(3))
	assert.Equal(t, "1.5", formatRate(1.5))
	assert.Equal(t, "0.25", formatRate(0.25))
}
