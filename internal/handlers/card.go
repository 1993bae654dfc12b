package handlers

import (
	"errors"

	"github.com/SanmaySarada/CardGeniusMVP/internal/models"
	"github.com/SanmaySarada/CardGeniusMVP/internal/services/wallet"
	"github.com/SanmaySarada/CardGeniusMVP/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	walletService wallet.Service
}

func NewCardHandler(walletService wallet.Service) *CardHandler {
	return &CardHandler{walletService: walletService}
}

func (h *CardHandler) GetCards(c *fiber.Ctx) error {
	cards, err := h.walletService.ListCards(c.Context(), currentUserID(c))
	if err != nil {
		return response.ServerError(c, "Failed to fetch cards")
	}
	return response.Success(c, "Cards retrieved successfully", cards)
}

func (h *CardHandler) AddCard(c *fiber.Ctx) error {
	var input models.CreateCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	card, err := h.walletService.AddCard(c.Context(), currentUserID(c), input)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidCardName) || errors.Is(err, wallet.ErrInvalidBankName) {
			return response.ValidationError(c, err.Error())
		}
		return response.ServerError(c, "Failed to add card")
	}

	return response.Created(c, "Card added successfully", card)
}

func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	cardID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid card ID")
	}

	if err := h.walletService.DeleteCard(c.Context(), currentUserID(c), uint(cardID)); err != nil {
		if errors.Is(err, wallet.ErrCardNotFound) {
			return response.NotFound(c, "Card not found")
		}
		return response.ServerError(c, "Failed to delete card")
	}

	return response.Success(c, "Card deleted successfully", nil)
}

func (h *CardHandler) SetDefaultCard(c *fiber.Ctx) error {
	cardID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid card ID")
	}

	if err := h.walletService.SetDefaultCard(c.Context(), currentUserID(c), uint(cardID)); err != nil {
		if errors.Is(err, wallet.ErrCardNotFound) {
			return response.NotFound(c, "Card not found")
		}
		return response.ServerError(c, "Failed to set default card")
	}

	return response.Success(c, "Default card updated", nil)
}

func (h *CardHandler) ScanCard(c *fiber.Ctx) error {
	result := h.walletService.ScanCard(c.Context())
	return response.Success(c, "Card scanned successfully", result)
}
