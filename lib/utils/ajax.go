package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// IsAjax reports whether the request was sent by the editor scripts rather
// than by a browser navigation.
func IsAjax(c *fiber.Ctx) bool {
	if c.XHR() {
		return true
	}
	accept := c.Get(fiber.HeaderAccept)
	return strings.Contains(accept, fiber.MIMEApplicationJSON) && !strings.Contains(accept, fiber.MIMETextHTML)
}
