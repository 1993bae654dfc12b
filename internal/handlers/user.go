package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const defaultUserID uint = 1

// currentUserID resolves the acting user from the X-User-ID header.
// Single-profile installs omit the header and fall through to user 1.
func currentUserID(c *fiber.Ctx) uint {
	raw := c.Get("X-User-ID")
	if raw == "" {
		return defaultUserID
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return defaultUserID
	}
	return uint(id)
}
