package ratelimit

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// NewMiddleware returns a Fiber middleware that rejects requests over the
// limiter's quota with 429, keyed by client IP.
func NewMiddleware(l *Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.Allow(c.Context(), c.IP()) {
			return c.Status(http.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later",
			})
		}
		return c.Next()
	}
}
