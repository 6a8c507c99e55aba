package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/auth/jwks"
	"github.com/qolzam/jobly/auth/login"
	"github.com/qolzam/jobly/auth/signup"
	"github.com/qolzam/jobly/internal/middleware/ratelimit"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
)

// AuthHandlers holds all the handlers this router needs.
type AuthHandlers struct {
	LoginHandler  *login.Handler
	SignupHandler *signup.Handler
	JWKSHandler   *jwks.Handler
}

// NewAuthHandlers creates a new AuthHandlers with injected dependencies
func NewAuthHandlers(loginHandler *login.Handler, signupHandler *signup.Handler, jwksHandler *jwks.Handler) *AuthHandlers {
	return &AuthHandlers{
		LoginHandler:  loginHandler,
		SignupHandler: signupHandler,
		JWKSHandler:   jwksHandler,
	}
}

// RegisterRoutes is the single entry point for setting up auth routes.
// It accepts all its dependencies and creates nothing. A nil storage keeps
// the rate limit counters in memory.
func RegisterRoutes(app *fiber.App, handlers *AuthHandlers, cfg *platformconfig.Config, storage fiber.Storage) {
	group := app.Group("/auth")

	group.Post("/token",
		ratelimit.NewLoginLimiter(cfg.RateLimits.Login, storage),
		handlers.LoginHandler.Handle,
	)
	group.Post("/register",
		ratelimit.NewRegisterLimiter(cfg.RateLimits.Register, storage),
		handlers.SignupHandler.Handle,
	)

	// JWKS endpoint (public, no authentication required)
	group.Get("/.well-known/jwks.json", handlers.JWKSHandler.Handle)
}
