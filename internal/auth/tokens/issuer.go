package tokens

import (
	"crypto/ecdsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/types"
)

// Issuer signs access tokens with a key parsed once at startup.
type Issuer struct {
	key    *ecdsa.PrivateKey
	issuer string
	ttl    time.Duration
}

// NewIssuer parses the configured private key.
func NewIssuer(cfg platformconfig.JWTConfig) (*Issuer, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(cfg.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key: %w", err)
	}
	return &Issuer{key: key, issuer: cfg.Issuer, ttl: cfg.TokenTTL}, nil
}

// Issue creates a token for user.
func (i *Issuer) Issue(user types.UserContext) (string, error) {
	return CreateTokenWithKey(i.key, user, i.issuer, i.ttl)
}
