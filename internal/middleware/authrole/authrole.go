package authrole

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/types"
)

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    "UNAUTHORIZED",
		"message": "Unauthorized",
	})
}

func currentUser(c *fiber.Ctx) (types.UserContext, bool) {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	return user, ok && user.Username != ""
}

// LoggedIn requires any authenticated user.
func LoggedIn() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := currentUser(c); !ok {
			return unauthorized(c)
		}
		return c.Next()
	}
}

// Admin requires an authenticated admin.
func Admin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok || !user.IsAdmin {
			return unauthorized(c)
		}
		return c.Next()
	}
}

// SelfOrAdmin requires an admin or the user named by the path parameter.
func SelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			return unauthorized(c)
		}
		if user.IsAdmin || user.Username == c.Params(param) {
			return c.Next()
		}
		return unauthorized(c)
	}
}
