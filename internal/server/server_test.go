package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/testutil"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func newTestApp(t *testing.T, db Pinger) (*fiber.App, *testutil.HTTPHelper, string) {
	t.Helper()
	pub, priv := testutil.GenerateECDSAKeyPairPEM(t)
	cfg := &platformconfig.Config{
		Server: platformconfig.ServerConfig{WebDomain: "http://localhost:3000"},
		JWT:    platformconfig.JWTConfig{PublicKey: pub, PrivateKey: priv, Issuer: testutil.TestIssuer},
	}
	app := New(cfg, db)
	return app, testutil.NewHTTPHelper(t, app), priv
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		_, h, _ := newTestApp(t, fakePinger{})
		status, resp := h.NewRequest(http.MethodGet, "/health", nil).SendJSON()
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "healthy", resp["status"])
	})

	t.Run("database down", func(t *testing.T) {
		_, h, _ := newTestApp(t, fakePinger{err: errors.New("connection refused")})
		status, resp := h.NewRequest(http.MethodGet, "/health", nil).SendJSON()
		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "unhealthy", resp["status"])
	})
}

func TestRequestID(t *testing.T) {
	_, h, _ := newTestApp(t, fakePinger{})

	resp := h.NewRequest(http.MethodGet, "/health", nil).Send()
	assert.NotEmpty(t, resp.Header.Get(types.HeaderRequestID))

	resp = h.NewRequest(http.MethodGet, "/health", nil).WithHeader(types.HeaderRequestID, "req-1").Send()
	assert.Equal(t, "req-1", resp.Header.Get(types.HeaderRequestID))
}

func TestUnknownRoute(t *testing.T) {
	_, h, _ := newTestApp(t, fakePinger{})
	status, resp := h.NewRequest(http.MethodGet, "/nope", nil).SendJSON()
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", resp["code"])
}

func TestPanicIsRecovered(t *testing.T) {
	app, h, _ := newTestApp(t, fakePinger{})
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	status, resp := h.NewRequest(http.MethodGet, "/boom", nil).SendJSON()
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", resp["code"])
}

func TestAuthenticationIsInstalled(t *testing.T) {
	app, h, priv := newTestApp(t, fakePinger{})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		user, _ := c.Locals(types.UserCtxName).(types.UserContext)
		return c.JSON(fiber.Map{"username": user.Username})
	})

	token := testutil.MustTestJWT(t, priv, types.UserContext{Username: "u1"})
	status, resp := h.NewRequest(http.MethodGet, "/whoami", nil).WithJWTAuth(token).SendJSON()
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "u1", resp["username"])

	_, resp = h.NewRequest(http.MethodGet, "/whoami", nil).WithJWTAuth("garbage").SendJSON()
	assert.Equal(t, "", resp["username"])
}
