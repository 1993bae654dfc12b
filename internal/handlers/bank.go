package handlers

import (
	"errors"

	"github.com/SanmaySarada/CardGeniusMVP/internal/services/wallet"
	"github.com/SanmaySarada/CardGeniusMVP/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type BankHandler struct {
	walletService wallet.Service
}

func NewBankHandler(walletService wallet.Service) *BankHandler {
	return &BankHandler{walletService: walletService}
}

func (h *BankHandler) ConnectBank(c *fiber.Ctx) error {
	var input struct {
		BankName string `json:"bank_name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	conn, err := h.walletService.ConnectBank(c.Context(), currentUserID(c), input.BankName)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidBankName) {
			return response.ValidationError(c, err.Error())
		}
		return response.ServerError(c, "Failed to connect bank")
	}

	return response.Success(c, "Bank connected successfully", conn)
}

func (h *BankHandler) GetBankConnection(c *fiber.Ctx) error {
	conn, err := h.walletService.BankConnection(c.Context(), currentUserID(c))
	if err != nil {
		return response.ServerError(c, "Failed to fetch bank connection")
	}
	if conn == nil {
		return response.Success(c, "No bank connected", fiber.Map{"connected": false})
	}
	return response.Success(c, "Bank connection retrieved", conn)
}
