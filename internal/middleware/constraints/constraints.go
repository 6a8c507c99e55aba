package constraints

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// RequireInt is a route constraint: a path parameter that is not a base-10
// integer in int32 range answers 404, as if the route did not match.
// Static routes must be registered before parameterized ones.
func RequireInt(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		paramValue := c.Params(param)
		if paramValue == "" {
			return c.Next()
		}
		if _, err := strconv.ParseInt(paramValue, 10, 32); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"code":    "NOT_FOUND",
				"message": "Not Found",
			})
		}
		return c.Next()
	}
}
