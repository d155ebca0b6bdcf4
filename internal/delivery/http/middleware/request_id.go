package middleware

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey is the fiber.Ctx locals key the request id is stored under.
const RequestIDKey = "request_id"

var validRequestID = regexp.MustCompile(`^[a-zA-Z0-9-._:]+$`)

// RequestID propagates a caller-supplied X-Request-ID or mints a fresh
// uuid when the header is missing or malformed.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")

		if reqID == "" || len(reqID) > 128 || !validRequestID.MatchString(reqID) {
			reqID = uuid.NewString()
		}

		c.Set("X-Request-ID", reqID)
		c.Locals(RequestIDKey, reqID)

		return c.Next()
	}
}

// GetRequestID retrieves the id set by RequestID, if any.
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
