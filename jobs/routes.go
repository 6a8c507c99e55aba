// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jobs

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/middleware/authrole"
	"github.com/qolzam/jobly/internal/middleware/constraints"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/jobs/handlers"
)

// JobsHandlers holds all the handlers this router needs
type JobsHandlers struct {
	JobHandler *handlers.JobHandler
}

// RegisterRoutes is the single entry point for setting up job routes.
// The authjwt middleware must already be installed on app.
func RegisterRoutes(app *fiber.App, handlers *JobsHandlers, cfg *platformconfig.Config) {
	group := app.Group("/jobs")
	idOnly := constraints.RequireInt("id")
	admin := authrole.Admin()

	// --- Public Routes ---
	group.Get("/", handlers.JobHandler.FindAll)
	group.Get("/:id", idOnly, handlers.JobHandler.Get)

	// --- Admin Routes ---
	group.Post("/", admin, handlers.JobHandler.Create)
	group.Patch("/:id", admin, idOnly, handlers.JobHandler.Update)
	group.Delete("/:id", admin, idOnly, handlers.JobHandler.Remove)
}
