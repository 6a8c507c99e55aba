// Package server builds the Fiber application with the middleware shared by every route group.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/qolzam/jobly/internal/middleware/authjwt"
	"github.com/qolzam/jobly/internal/middleware/requestid"
	"github.com/qolzam/jobly/internal/pkg/log"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/types"
)

// ErrorResponse is the body written for errors no handler answered.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// New creates the app with request ids, logging, recovery, CORS and optional
// JWT authentication installed, and GET /health answered by db.
// Feature routes are registered by the caller.
func New(cfg *platformconfig.Config, db Pinger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Jobly API",
		ErrorHandler: errorHandler,
	})

	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:" + requestid.ContextKeyRequestID + "} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.WebDomain,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, PATCH, OPTIONS",
	}))
	app.Use(authjwt.New(authjwt.Config{
		PublicKey:   cfg.JWT.PublicKey,
		Issuer:      cfg.JWT.Issuer,
		UserCtxName: types.UserCtxName,
	}))

	app.Get("/health", Health(db))

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	// If response already set by handler, don't override it
	if len(c.Response().Body()) > 0 {
		return nil
	}

	if code >= fiber.StatusInternalServerError {
		log.ErrorWithContext(c.UserContext(), "[ErrorHandler] %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(code).JSON(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"})
	}

	errCode := "ERROR"
	if code == fiber.StatusNotFound {
		errCode = "NOT_FOUND"
	}
	return c.Status(code).JSON(ErrorResponse{Code: errCode, Message: err.Error()})
}
