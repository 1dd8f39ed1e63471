package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converts a *fiber.Error into the standard JSON error shape.
// Anything else falls back to a 500 with the original message.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
