package authjwt

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// The EC public key for validating ES256 tokens.
	PublicKey string
	// Issuer every accepted token must carry.
	Issuer string
	// The context key to store the UserContext.
	UserCtxName string
}

// New creates an authentication middleware. A valid bearer token stores a
// types.UserContext in Locals; a missing or invalid token leaves the request
// anonymous and authorization is left to authrole.
func New(cfg Config) fiber.Handler {
	// Parse the key once on startup.
	publicKey, err := tokens.ParsePublicKey(cfg.PublicKey)
	if err != nil {
		panic(fmt.Sprintf("failed to parse EC public key: %v", err))
	}
	return NewWithKey(publicKey, cfg.Issuer, cfg.UserCtxName)
}

// NewWithKey is New with an already parsed key.
func NewWithKey(publicKey *ecdsa.PublicKey, issuer, userCtxName string) fiber.Handler {
	if userCtxName == "" {
		userCtxName = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get(types.HeaderAuthorization))
		if tokenString == "" {
			return c.Next()
		}

		claims, err := tokens.ParseToken(publicKey, tokenString, issuer)
		if err != nil {
			log.DebugWithContext(c.UserContext(), "ignoring bearer token: %v", err)
			return c.Next()
		}

		c.Locals(userCtxName, claims.UserContext())
		return c.Next()
	}
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, types.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, types.BearerPrefix))
}

// GetUser returns the authenticated user, if any.
func GetUser(c *fiber.Ctx) (types.UserContext, bool) {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	return user, ok
}
