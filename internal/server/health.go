package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/pkg/log"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *postgres.Client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// Health answers 200 when db responds to a ping and 503 otherwise.
func Health(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.WarnWithContext(ctx, "health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{
				Status:   "unhealthy",
				Services: map[string]string{"api": "healthy", "database": "unreachable"},
			})
		}

		return c.JSON(HealthResponse{
			Status:   "healthy",
			Services: map[string]string{"api": "healthy", "database": "healthy"},
		})
	}
}
