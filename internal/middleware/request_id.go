package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIdKey = "request_id"

// RequestIdMiddleware tags every request with an id for log correlation
func RequestIdMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(RequestIdKey, id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}

// RequestId returns the id attached by RequestIdMiddleware
func RequestId(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIdKey).(string)
	return id
}
