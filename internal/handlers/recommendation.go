package handlers

import (
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/SanmaySarada/CardGeniusMVP/internal/models"
	"github.com/SanmaySarada/CardGeniusMVP/internal/repositories"
	"github.com/SanmaySarada/CardGeniusMVP/internal/services/places"
	"github.com/SanmaySarada/CardGeniusMVP/internal/services/rewards"
	"github.com/SanmaySarada/CardGeniusMVP/internal/services/wallet"
	"github.com/SanmaySarada/CardGeniusMVP/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const defaultNearbyRecommendationLimit = 10

type RecommendationHandler struct {
	rewardsService   rewards.Service
	walletService    wallet.Service
	placesService    places.Service
	notificationRepo repositories.NotificationRepository
}

func NewRecommendationHandler(
	rewardsService rewards.Service,
	walletService wallet.Service,
	placesService places.Service,
	notificationRepo repositories.NotificationRepository,
) *RecommendationHandler {
	return &RecommendationHandler{
		rewardsService:   rewardsService,
		walletService:    walletService,
		placesService:    placesService,
		notificationRepo: notificationRepo,
	}
}

// GetRecommendation returns the best card in the user's wallet for a
// merchant given by name and optional comma-separated place types.
func (h *RecommendationHandler) GetRecommendation(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return response.BadRequest(c, "Query parameter 'name' is required")
	}
	types := splitTypes(c.Query("types"))

	userID := currentUserID(c)
	cardNames, err := h.walletService.CardNames(c.Context(), userID)
	if err != nil {
		return response.ServerError(c, "Failed to fetch cards")
	}

	rec, err := h.rewardsService.BestCardForPlace(c.Context(), name, types, cardNames)
	if err != nil {
		if errors.Is(err, rewards.ErrMatrixUnavailable) {
			return response.ServiceUnavailable(c, "Rewards data is temporarily unavailable")
		}
		return response.ServerError(c, "Failed to compute recommendation")
	}

	return response.Success(c, "Recommendation computed", fiber.Map{
		"merchant":       name,
		"recommendation": rec,
	})
}

type nearbyRecommendation struct {
	Place          models.Place                `json:"place"`
	Recommendation *rewards.CardRecommendation `json:"recommendation"`
}

// GetNearbyRecommendations walks the merchants around the user's location
// and pairs each with the best card in the wallet. Positive matches are
// recorded as notifications.
func (h *RecommendationHandler) GetNearbyRecommendations(c *fiber.Ctx) error {
	userID := currentUserID(c)

	lat := c.QueryFloat("lat", 0)
	lng := c.QueryFloat("lng", 0)
	radius := c.QueryInt("radius", places.DefaultRadius)
	limit := c.QueryInt("limit", defaultNearbyRecommendationLimit)

	if lat == 0 && lng == 0 {
		ping, err := h.walletService.LastLocation(c.Context(), userID)
		if err != nil {
			if errors.Is(err, wallet.ErrLocationUnknown) {
				return response.BadRequest(c, "No location available; pass lat and lng or update your location")
			}
			return response.ServerError(c, "Failed to resolve location")
		}
		lat, lng = ping.Lat, ping.Lng
	}

	cards, err := h.walletService.ListCards(c.Context(), userID)
	if err != nil {
		return response.ServerError(c, "Failed to fetch cards")
	}
	cardNames := make([]string, 0, len(cards))
	cardIDs := make(map[string]uint, len(cards))
	for _, card := range cards {
		cardNames = append(cardNames, card.CardName)
		cardIDs[card.CardName] = card.ID
	}

	found := h.placesService.FindNearby(c.Context(), lat, lng, radius)

	results := make([]nearbyRecommendation, 0, len(found))
	for _, place := range found {
		rec, err := h.rewardsService.BestCardForPlace(c.Context(), place.Name, place.Types, cardNames)
		if err != nil {
			if errors.Is(err, rewards.ErrMatrixUnavailable) {
				return response.ServiceUnavailable(c, "Rewards data is temporarily unavailable")
			}
			return response.ServerError(c, "Failed to compute recommendations")
		}
		if rec == nil {
			continue
		}
		results = append(results, nearbyRecommendation{Place: place, Recommendation: rec})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Recommendation.RewardRate > results[j].Recommendation.RewardRate
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	for _, r := range results {
		h.recordNotification(userID, cardIDs[r.Recommendation.CardName], r)
	}

	return response.Success(c, "Nearby recommendations computed", results)
}

func (h *RecommendationHandler) recordNotification(userID, cardID uint, r nearbyRecommendation) {
	if h.notificationRepo == nil {
		return
	}
	n := &models.Notification{
		UserID:       userID,
		CardID:       cardID,
		MerchantName: r.Place.Name,
		CardName:     r.Recommendation.CardName,
		RewardRate:   r.Recommendation.RewardRate,
		Reason:       r.Recommendation.OfferText,
		Lat:          r.Place.Lat,
		Lng:          r.Place.Lng,
	}
	if err := h.notificationRepo.Create(n); err != nil {
		log.Printf("failed to record notification for %s: %v", r.Place.Name, err)
	}
}

func splitTypes(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	types := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			types = append(types, t)
		}
	}
	return types
}
