// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package companies

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/companies/handlers"
	"github.com/qolzam/jobly/internal/middleware/authrole"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
)

// CompaniesHandlers holds all the handlers this router needs
type CompaniesHandlers struct {
	CompanyHandler *handlers.CompanyHandler
}

// RegisterRoutes is the single entry point for setting up company routes.
// The authjwt middleware must already be installed on app.
func RegisterRoutes(app *fiber.App, handlers *CompaniesHandlers, cfg *platformconfig.Config) {
	group := app.Group("/companies")

	// --- Public Routes ---
	group.Get("/", handlers.CompanyHandler.FindAll)
	group.Get("/:handle", handlers.CompanyHandler.Get)

	// --- Admin Routes ---
	admin := authrole.Admin()
	group.Post("/", admin, handlers.CompanyHandler.Create)
	group.Patch("/:handle", admin, handlers.CompanyHandler.Update)
	group.Delete("/:handle", admin, handlers.CompanyHandler.Remove)
}
