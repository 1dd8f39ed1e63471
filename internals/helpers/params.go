package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseIDParam reads the :id path segment as a positive int64.
func ParseIDParam(c *fiber.Ctx) (int64, error) {
	raw := strings.TrimSpace(c.Params("id"))
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id must not be empty")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}
