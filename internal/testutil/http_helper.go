package testutil

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/require"
)

// HTTPHelper provides a robust way to make HTTP requests in tests.
// It enforces error checking and provides a fluent API for building requests.
type HTTPHelper struct {
	t   *testing.T
	app *fiber.App
}

// NewHTTPHelper creates a new test helper for a given Fiber app.
func NewHTTPHelper(t *testing.T, app *fiber.App) *HTTPHelper {
	require.NotNil(t, app, "Fiber app provided to HTTPHelper cannot be nil")
	return &HTTPHelper{
		t:   t,
		app: app,
	}
}

// Request represents a test request under construction.
type Request struct {
	helper    *HTTPHelper
	method    string
	path      string
	bodyBytes []byte
	headers   http.Header
}

// NewRequest begins building a new test request. Non-string bodies are
// marshaled to JSON.
func (h *HTTPHelper) NewRequest(method, path string, body interface{}) *Request {
	var bodyBytes []byte
	if body != nil {
		switch b := body.(type) {
		case []byte:
			bodyBytes = b
		case string:
			bodyBytes = []byte(b)
		default:
			jsonBytes, err := json.Marshal(body)
			require.NoError(h.t, err, "Failed to marshal request body to JSON")
			bodyBytes = jsonBytes
		}
	}

	req := &Request{
		helper:    h,
		method:    method,
		path:      path,
		bodyBytes: bodyBytes,
		headers:   make(http.Header),
	}

	if body != nil {
		req.WithHeader(types.HeaderContentType, "application/json")
	}

	return req
}

// WithHeader adds a header to the request.
func (r *Request) WithHeader(key, value string) *Request {
	r.headers.Add(key, value)
	return r
}

// WithJWTAuth adds the token as an Authorization: Bearer header.
func (r *Request) WithJWTAuth(token string) *Request {
	r.WithHeader(types.HeaderAuthorization, types.BearerPrefix+token)
	return r
}

// Send executes the request and returns the response.
func (r *Request) Send() *http.Response {
	req := httptest.NewRequest(r.method, r.path, bytes.NewReader(r.bodyBytes))
	req.Header = r.headers

	// Use a reasonable default timeout to prevent tests from hanging.
	resp, err := r.helper.app.Test(req, int(10*time.Second.Milliseconds()))

	require.NoError(r.helper.t, err, "app.Test should not return an error")
	require.NotNil(r.helper.t, resp, "app.Test response should not be nil")

	return resp
}

// SendJSON executes the request and decodes the response body into a map.
func (r *Request) SendJSON() (int, map[string]interface{}) {
	resp := r.Send()
	return resp.StatusCode, DecodeJSON(r.helper.t, resp)
}

// DecodeJSON reads and decodes a JSON object response body.
func DecodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]interface{}{}
	if len(raw) == 0 {
		return out
	}
	require.NoError(t, json.Unmarshal(raw, &out), "response body: %s", raw)
	return out
}

// TestIssuer is the issuer of tokens made by GenerateTestJWT.
const TestIssuer = "jobly-test"

// GenerateTestJWT creates a one hour token for user.
func GenerateTestJWT(privateKeyPEM string, user types.UserContext) (string, error) {
	return tokens.CreateToken(privateKeyPEM, user, TestIssuer, time.Hour)
}

// MustTestJWT is GenerateTestJWT failing the test on error.
func MustTestJWT(t *testing.T, privateKeyPEM string, user types.UserContext) string {
	t.Helper()
	token, err := GenerateTestJWT(privateKeyPEM, user)
	require.NoError(t, err, "Failed to generate test JWT")
	return token
}

// GenerateECDSAKeyPairPEM generates valid ECDSA key pairs for testing.
// Returns (publicKeyPEM, privateKeyPEM) as strings.
func GenerateECDSAKeyPairPEM(t *testing.T) (string, string) {
	t.Helper()

	pub, priv, err := generateKeyPair()
	require.NoError(t, err, "Failed to generate ECDSA key pair")
	return pub, priv
}

func generateKeyPair() (string, string, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return "", "", err
	}

	// Use PKCS8 format for private key
	privBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return "", "", err
	}
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privBytes})

	// Use PKIX format for public key
	pubBytes, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return "", "", err
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})

	return string(pubPEM), string(privPEM), nil
}
