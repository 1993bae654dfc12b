package handlers

import (
	"errors"

	"github.com/SanmaySarada/CardGeniusMVP/internal/repositories"
	"github.com/SanmaySarada/CardGeniusMVP/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationHandler(notificationRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	notifications, err := h.notificationRepo.ListByUser(currentUserID(c), limit)
	if err != nil {
		return response.ServerError(c, "Failed to fetch notifications")
	}
	return response.Success(c, "Notifications retrieved", notifications)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid notification ID")
	}

	if err := h.notificationRepo.MarkRead(currentUserID(c), uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return response.NotFound(c, "Notification not found")
		}
		return response.ServerError(c, "Failed to mark notification read")
	}

	return response.Success(c, "Notification marked read", nil)
}
