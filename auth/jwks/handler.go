package jwks

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/auth/tokens"
)

type Handler struct {
	jwks JWKS
}

// NewHandler parses publicKey once and serves it as a one-key set.
// The key id is the RFC 7638 thumbprint of the key.
func NewHandler(publicKey string) (*Handler, error) {
	key, err := tokens.ParsePublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	if key.Curve.Params().BitSize != 256 {
		return nil, fmt.Errorf("public key is not P-256")
	}
	return &Handler{jwks: JWKS{Keys: []JWK{toJWK(key)}}}, nil
}

// JWKS represents a JSON Web Key Set
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK represents a JSON Web Key
type JWK struct {
	Kty string `json:"kty"` // Key Type
	Use string `json:"use"` // Public Key Use
	Kid string `json:"kid"` // Key ID
	Alg string `json:"alg"` // Algorithm
	Crv string `json:"crv"` // Curve (for EC keys)
	X   string `json:"x"`   // X coordinate
	Y   string `json:"y"`   // Y coordinate
}

func toJWK(key *ecdsa.PublicKey) JWK {
	// Coordinates are fixed width for P-256.
	x := base64.RawURLEncoding.EncodeToString(key.X.FillBytes(make([]byte, 32)))
	y := base64.RawURLEncoding.EncodeToString(key.Y.FillBytes(make([]byte, 32)))

	thumbprint := sha256.Sum256([]byte(fmt.Sprintf(`{"crv":"P-256","kty":"EC","x":"%s","y":"%s"}`, x, y)))

	return JWK{
		Kty: "EC",
		Use: "sig",
		Kid: base64.RawURLEncoding.EncodeToString(thumbprint[:]),
		Alg: "ES256",
		Crv: "P-256",
		X:   x,
		Y:   y,
	}
}

// Handle returns the JWKS for JWT validation
func (h *Handler) Handle(c *fiber.Ctx) error {
	return c.JSON(h.jwks)
}
