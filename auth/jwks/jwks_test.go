package jwks_test

import (
	"encoding/base64"
	"math/big"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/auth/jwks"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/testutil"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWKS_Endpoint(t *testing.T) {
	pub, _ := testutil.GenerateECDSAKeyPairPEM(t)
	handler, err := jwks.NewHandler(pub)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/.well-known/jwks.json", handler.Handle)
	h := testutil.NewHTTPHelper(t, app)

	resp := h.NewRequest(http.MethodGet, "/.well-known/jwks.json", nil).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(types.HeaderContentType), "application/json")

	body := testutil.DecodeJSON(t, resp)
	keys := body["keys"].([]any)
	require.Len(t, keys, 1)
	jwk := keys[0].(map[string]any)
	assert.Equal(t, "EC", jwk["kty"])
	assert.Equal(t, "ES256", jwk["alg"])
	assert.Equal(t, "P-256", jwk["crv"])
	assert.NotEmpty(t, jwk["kid"])

	key, err := tokens.ParsePublicKey(pub)
	require.NoError(t, err)
	x, err := base64.RawURLEncoding.DecodeString(jwk["x"].(string))
	require.NoError(t, err)
	y, err := base64.RawURLEncoding.DecodeString(jwk["y"].(string))
	require.NoError(t, err)
	assert.Len(t, x, 32)
	assert.Len(t, y, 32)
	assert.Equal(t, 0, key.X.Cmp(new(big.Int).SetBytes(x)))
	assert.Equal(t, 0, key.Y.Cmp(new(big.Int).SetBytes(y)))
}

func TestJWKS_StableKeyID(t *testing.T) {
	pub, _ := testutil.GenerateECDSAKeyPairPEM(t)
	first, err := jwks.NewHandler(pub)
	require.NoError(t, err)
	second, err := jwks.NewHandler(pub)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/a", first.Handle)
	app.Get("/b", second.Handle)
	h := testutil.NewHTTPHelper(t, app)

	_, a := h.NewRequest(http.MethodGet, "/a", nil).SendJSON()
	_, b := h.NewRequest(http.MethodGet, "/b", nil).SendJSON()
	assert.Equal(t, a, b)
}

func TestJWKS_InvalidKey(t *testing.T) {
	_, err := jwks.NewHandler("invalid-key-for-test")
	assert.Error(t, err)
}
