package authrole

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appWithUser(user *types.UserContext, route string, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(types.UserCtxName, *user)
		}
		return c.Next()
	})
	app.Get(route, guard, func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	return app
}

func status(t *testing.T, app *fiber.App, path string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestLoggedIn(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, status(t, appWithUser(nil, "/", LoggedIn()), "/"))
	assert.Equal(t, http.StatusOK, status(t, appWithUser(&types.UserContext{Username: "u1"}, "/", LoggedIn()), "/"))
}

func TestAdmin(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, status(t, appWithUser(nil, "/", Admin()), "/"))
	assert.Equal(t, http.StatusUnauthorized, status(t, appWithUser(&types.UserContext{Username: "u1"}, "/", Admin()), "/"))
	assert.Equal(t, http.StatusOK, status(t, appWithUser(&types.UserContext{Username: "a1", IsAdmin: true}, "/", Admin()), "/"))
}

func TestSelfOrAdmin(t *testing.T) {
	tests := []struct {
		name string
		user *types.UserContext
		path string
		want int
	}{
		{"anonymous", nil, "/users/u1", http.StatusUnauthorized},
		{"self", &types.UserContext{Username: "u1"}, "/users/u1", http.StatusOK},
		{"other user", &types.UserContext{Username: "u2"}, "/users/u1", http.StatusUnauthorized},
		{"admin", &types.UserContext{Username: "a1", IsAdmin: true}, "/users/u1", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appWithUser(tt.user, "/users/:username", SelfOrAdmin("username"))
			assert.Equal(t, tt.want, status(t, app, tt.path))
		})
	}
}
