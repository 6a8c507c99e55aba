// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/middleware/authrole"
	"github.com/qolzam/jobly/internal/middleware/constraints"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/users/handlers"
)

// UsersHandlers holds all the handlers this router needs
type UsersHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes is the single entry point for setting up user routes.
// The authjwt middleware must already be installed on app.
func RegisterRoutes(app *fiber.App, handlers *UsersHandlers, cfg *platformconfig.Config) {
	group := app.Group("/users")
	admin := authrole.Admin()
	selfOrAdmin := authrole.SelfOrAdmin("username")

	// --- Admin Routes ---
	group.Post("/", admin, handlers.UserHandler.Create)
	group.Get("/", admin, handlers.UserHandler.FindAll)

	// --- Self or Admin Routes ---
	group.Get("/:username", selfOrAdmin, handlers.UserHandler.Get)
	group.Patch("/:username", selfOrAdmin, handlers.UserHandler.Update)
	group.Delete("/:username", selfOrAdmin, handlers.UserHandler.Remove)
	group.Post("/:username/jobs/:id", selfOrAdmin, constraints.RequireInt("id"), handlers.UserHandler.Apply)
}
