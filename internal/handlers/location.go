package handlers

import (
	"errors"

	"github.com/SanmaySarada/CardGeniusMVP/internal/services/wallet"
	"github.com/SanmaySarada/CardGeniusMVP/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	walletService wallet.Service
}

func NewLocationHandler(walletService wallet.Service) *LocationHandler {
	return &LocationHandler{walletService: walletService}
}

func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	var input struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if err := h.walletService.UpdateLocation(c.Context(), currentUserID(c), input.Lat, input.Lng); err != nil {
		if errors.Is(err, wallet.ErrInvalidCoordinate) {
			return response.ValidationError(c, err.Error())
		}
		return response.ServerError(c, "Failed to update location")
	}

	return response.Success(c, "Location updated", nil)
}
