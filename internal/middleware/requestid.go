package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the request ID on responses.
const HeaderRequestID = "X-Request-ID"

// localsRequestIDKey is the fiber locals key for the request ID.
const localsRequestIDKey = "request_id"

// RequestID assigns each request a UUID, reusing the inbound header when a
// proxy already set one, and echoes it on the response.
func RequestID(c fiber.Ctx) error {
	id := c.Get(HeaderRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals(localsRequestIDKey, id)
	c.Set(HeaderRequestID, id)
	return c.Next()
}

// GetRequestID returns the request ID assigned by RequestID, or "".
func GetRequestID(c fiber.Ctx) string {
	id, _ := c.Locals(localsRequestIDKey).(string)
	return id
}
