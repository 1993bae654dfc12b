package rewards

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SanmaySarada/CardGeniusMVP/internal/services/category"
	"golang.org/x/sync/singleflight"
)

const (
	// Universal fallback terms, always part of the search set.
	everywhereTerm = "Everywhere"
	fallbackTerm   = "Other purchases"

	offerSeparator = " • " // bullet between the top offers
	maxOfferTerms  = 2
)

// Service is the reward recommendation engine. All methods are pure reads
// over the loaded matrix and safe to call concurrently.
type Service interface {
	// BestCardForPlace returns the single best card for a merchant, or nil
	// when no card scores above zero ("no specific offer - use the default
	// card").
	BestCardForPlace(ctx context.Context, placeName string, placeTypes []string, userCards []string) (*CardRecommendation, error)

	// RecommendationForCategory scores cards against one category directly,
	// with the Everywhere rate as fallback.
	RecommendationForCategory(ctx context.Context, cat string, userCards []string) (*CardRecommendation, error)

	// RankCardsForPlace returns every user card scored for a merchant,
	// highest rate first, truncated to topN (topN <= 0 means all).
	RankCardsForPlace(ctx context.Context, placeName string, placeTypes []string, userCards []string, topN int) ([]CardRecommendation, error)
}

type service struct {
	source  Source
	metrics MetricsCollector

	mu     sync.RWMutex
	matrix *Matrix
	group  singleflight.Group
}

// NewService creates the recommendation engine. The matrix is not fetched
// here; the first request triggers the load.
func NewService(source Source, metrics MetricsCollector) Service {
	if source == nil {
		panic("source is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{
		source:  source,
		metrics: metrics,
	}
}

// loadMatrix returns the cached matrix, loading it on first use. Concurrent
// callers before the first successful load share a single in-flight fetch.
// Failed loads are not cached: the next caller retries.
func (s *service) loadMatrix(ctx context.Context) (*Matrix, error) {
	s.mu.RLock()
	m := s.matrix
	s.mu.RUnlock()
	if m != nil {
		return m, nil
	}

	v, err, _ := s.group.Do("matrix", func() (interface{}, error) {
		s.mu.RLock()
		cached := s.matrix
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		start := time.Now()
		body, err := s.source.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		defer body.Close()

		matrix, err := ParseMatrix(body)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.matrix = matrix
		s.mu.Unlock()

		s.metrics.RecordMatrixLoad(time.Since(start), matrix.CardCount(), len(matrix.Categories))
		log.Printf("rewards matrix loaded: %d cards, %d categories", matrix.CardCount(), len(matrix.Categories))
		return matrix, nil
	})
	if err != nil {
		s.metrics.RecordError("load_matrix", "fetch_or_parse")
		return nil, fmt.Errorf("%w: %v", ErrMatrixUnavailable, err)
	}
	return v.(*Matrix), nil
}

func (s *service) BestCardForPlace(ctx context.Context, placeName string, placeTypes []string, userCards []string) (*CardRecommendation, error) {
	matrix, err := s.loadMatrix(ctx)
	if err != nil {
		return nil, err
	}

	cats := category.CategoriesToCheck(placeName, placeTypes)
	if len(cats) == 0 {
		return nil, nil
	}

	terms := buildSearchTerms(cats, matrix.Categories)

	var best *CardRecommendation
	maxReward := 0.0

	for _, cardName := range userCards {
		if !matrix.HasCard(cardName) {
			log.Printf("warning: card %q not found in rewards matrix", cardName)
			s.metrics.RecordCardMiss(cardName)
			continue
		}

		bestRate, bestTerm := bestRateForCard(matrix, cardName, terms)
		// Strict > keeps the earlier card on ties.
		if bestRate > maxReward {
			maxReward = bestRate
			best = &CardRecommendation{
				CardName:   cardName,
				RewardRate: bestRate,
				Category:   bestTerm,
				OfferText:  offerText(matrix, cardName, terms, bestRate),
			}
		}
	}

	if best != nil {
		s.metrics.RecordRecommendation(best.Category, best.RewardRate)
	}
	return best, nil
}

func (s *service) RecommendationForCategory(ctx context.Context, cat string, userCards []string) (*CardRecommendation, error) {
	matrix, err := s.loadMatrix(ctx)
	if err != nil {
		return nil, err
	}

	var best *CardRecommendation
	maxReward := 0.0

	for _, cardName := range userCards {
		if !matrix.HasCard(cardName) {
			s.metrics.RecordCardMiss(cardName)
			continue
		}

		rate := matrix.Rate(cardName, cat)
		if rate == 0 {
			rate = matrix.Rate(cardName, everywhereTerm)
		}
		if rate > maxReward {
			maxReward = rate
			best = &CardRecommendation{
				CardName:   cardName,
				RewardRate: rate,
				Category:   cat,
				OfferText:  formatRate(rate) + "% " + cat,
			}
		}
	}

	if best != nil {
		s.metrics.RecordRecommendation(cat, best.RewardRate)
	}
	return best, nil
}

func (s *service) RankCardsForPlace(ctx context.Context, placeName string, placeTypes []string, userCards []string, topN int) ([]CardRecommendation, error) {
	matrix, err := s.loadMatrix(ctx)
	if err != nil {
		return nil, err
	}

	cats := category.CategoriesToCheck(placeName, placeTypes)
	if len(cats) == 0 {
		return nil, nil
	}

	terms := buildSearchTerms(cats, matrix.Categories)

	ranked := make([]CardRecommendation, 0, len(userCards))
	for _, cardName := range userCards {
		rec := CardRecommendation{CardName: cardName}
		if matrix.HasCard(cardName) {
			rec.RewardRate, rec.Category = bestRateForCard(matrix, cardName, terms)
			if rec.RewardRate > 0 {
				rec.OfferText = offerText(matrix, cardName, terms, rec.RewardRate)
			}
		} else {
			s.metrics.RecordCardMiss(cardName)
		}
		ranked = append(ranked, rec)
	}

	// Stable keeps wallet order among equal rates.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RewardRate > ranked[j].RewardRate
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}

// buildSearchTerms expands the merchant's categories into the deduplicated
// term set used for scoring: each category verbatim, every matrix column
// containing a category as a case-insensitive substring, and the two
// universal fallback terms. Insertion order is preserved so downstream
// tie-breaks stay deterministic.
func buildSearchTerms(cats []string, allCategories []string) []string {
	seen := make(map[string]struct{}, len(cats)+2)
	terms := make([]string, 0, len(cats)+2)
	add := func(t string) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}

	for _, cat := range cats {
		add(cat)
		catLower := strings.ToLower(cat)
		for _, col := range allCategories {
			if strings.Contains(strings.ToLower(col), catLower) {
				add(col)
			}
		}
	}

	add(everywhereTerm)
	add(fallbackTerm)
	return terms
}

// bestRateForCard takes the maximum rate across all search terms, not the
// sum and not the first match. The first term reaching the maximum wins.
func bestRateForCard(matrix *Matrix, cardName string, terms []string) (float64, string) {
	bestRate := 0.0
	bestTerm := ""
	for _, term := range terms {
		if rate := matrix.Rate(cardName, term); rate > bestRate {
			bestRate = rate
			bestTerm = term
		}
	}
	return bestRate, bestTerm
}

// offerText renders the card's top offers among the search terms, e.g.
// "3% Dining • 1.5% Everywhere".
func offerText(matrix *Matrix, cardName string, terms []string, bestRate float64) string {
	type offer struct {
		term string
		rate float64
	}
	offers := make([]offer, 0, len(terms))
	for _, term := range terms {
		if rate := matrix.Rate(cardName, term); rate > 0 {
			offers = append(offers, offer{term: term, rate: rate})
		}
	}

	if len(offers) == 0 {
		return formatRate(bestRate) + "% cashback"
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].rate > offers[j].rate
	})
	if len(offers) > maxOfferTerms {
		offers = offers[:maxOfferTerms]
	}

	parts := make([]string, len(offers))
	for i, o := range offers {
		parts[i] = formatRate(o.rate) + "% " + o.term
	}
	return strings.Join(parts, offerSeparator)
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
