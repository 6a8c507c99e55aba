package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/types"
)

// ContextKeyRequestID is the Locals key holding the request ID.
const ContextKeyRequestID = "request_id"

// New creates a middleware that reuses an incoming X-Request-ID or generates one.
// The ID is exposed through Locals, the response header, and the request context used by log.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(types.HeaderRequestID)
		if requestID == "" {
			id, err := uuid.NewV4()
			if err != nil {
				return err
			}
			requestID = id.String()
		}

		c.Locals(ContextKeyRequestID, requestID)
		c.Set(types.HeaderRequestID, requestID)
		c.SetUserContext(log.WithRequestID(c.UserContext(), requestID))

		return c.Next()
	}
}

// GetRequestID retrieves the request ID from Fiber context
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}
