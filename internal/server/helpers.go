package server

import (
	"strconv"

	"recipebox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID extracts a route parameter as a positive uint, failing with the
// MalformedID variant when the segment is not a well-formed identifier.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewMalformedIDError()
	}
	return uint(id), nil
}

// identity returns the authenticated user ID attached by the auth gate.
func identity(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}
