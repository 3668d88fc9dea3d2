package middleware

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
)

// APIKeyMiddleware rejects requests that do not carry the shared key in
// X-Api-Key. When CLUB_API_KEY is unset the check is disabled and every
// request passes through.
func APIKeyMiddleware() fiber.Handler {
	apiKey := os.Getenv("CLUB_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  CLUB_API_KEY not set — API key check disabled")
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}
	return func(c *fiber.Ctx) error {
		if c.Get("X-Api-Key") != apiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid X-Api-Key",
			})
		}
		return c.Next()
	}
}
