package handlers

import (
	"errors"

	"github.com/SanmaySarada/CardGeniusMVP/internal/services/places"
	"github.com/SanmaySarada/CardGeniusMVP/internal/services/wallet"
	"github.com/SanmaySarada/CardGeniusMVP/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PlacesHandler struct {
	placesService places.Service
	walletService wallet.Service
}

func NewPlacesHandler(placesService places.Service, walletService wallet.Service) *PlacesHandler {
	return &PlacesHandler{placesService: placesService, walletService: walletService}
}

// GetNearbyPlaces serves nearby merchants for the given (or last known)
// coordinates. Lookup failures degrade to an empty list.
func (h *PlacesHandler) GetNearbyPlaces(c *fiber.Ctx) error {
	lat := c.QueryFloat("lat", 0)
	lng := c.QueryFloat("lng", 0)
	radius := c.QueryInt("radius", places.DefaultRadius)

	if lat == 0 && lng == 0 {
		ping, err := h.walletService.LastLocation(c.Context(), currentUserID(c))
		if err != nil {
			if errors.Is(err, wallet.ErrLocationUnknown) {
				return response.BadRequest(c, "No location available; pass lat and lng or update your location")
			}
			return response.ServerError(c, "Failed to resolve location")
		}
		lat, lng = ping.Lat, ping.Lng
	}

	found := h.placesService.FindNearby(c.Context(), lat, lng, radius)
	return response.Success(c, "Nearby places retrieved", found)
}
