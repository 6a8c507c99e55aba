package authjwt

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (*fiber.App, *ecdsa.PrivateKey) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(NewWithKey(&key.PublicKey, "jobly", ""))
	app.Get("/", func(c *fiber.Ctx) error {
		user, ok := GetUser(c)
		if !ok {
			return c.SendString("anonymous")
		}
		if user.IsAdmin {
			return c.SendString("admin:" + user.Username)
		}
		return c.SendString("user:" + user.Username)
	})
	return app, key
}

func body(t *testing.T, app *fiber.App, authHeader string) string {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	if authHeader != "" {
		req.Header.Set(types.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestAuthJWT_ValidToken(t *testing.T) {
	app, key := newApp(t)

	tok, err := tokens.CreateTokenWithKey(key, types.UserContext{Username: "test", IsAdmin: false}, "jobly", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "user:test", body(t, app, "Bearer "+tok))

	adminTok, err := tokens.CreateTokenWithKey(key, types.UserContext{Username: "boss", IsAdmin: true}, "jobly", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "admin:boss", body(t, app, "Bearer "+adminTok))
}

func TestAuthJWT_NoHeader(t *testing.T) {
	app, _ := newApp(t)
	assert.Equal(t, "anonymous", body(t, app, ""))
}

func TestAuthJWT_InvalidToken(t *testing.T) {
	app, _ := newApp(t)
	assert.Equal(t, "anonymous", body(t, app, "Bearer garbage"))

	other, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	tok, err := tokens.CreateTokenWithKey(other, types.UserContext{Username: "test"}, "jobly", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "anonymous", body(t, app, "Bearer "+tok))
}

func TestAuthJWT_WrongIssuer(t *testing.T) {
	app, key := newApp(t)

	tok, err := tokens.CreateTokenWithKey(key, types.UserContext{Username: "boss", IsAdmin: true}, "elsewhere", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "anonymous", body(t, app, "Bearer "+tok))
}

func TestNew_PanicsOnBadKey(t *testing.T) {
	assert.Panics(t, func() { New(Config{PublicKey: "nope"}) })
}
