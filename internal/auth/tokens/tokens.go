package tokens

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/qolzam/jobly/internal/types"
)

// KeyID is written to the kid header of every issued token.
const KeyID = "jobly-auth-key-1"

var ErrInvalidToken = errors.New("invalid token")

// JoblyClaims is the payload of an access token.
type JoblyClaims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// UserContext returns the identity carried by the claims.
func (c *JoblyClaims) UserContext() types.UserContext {
	return types.UserContext{Username: c.Username, IsAdmin: c.IsAdmin}
}

// CreateToken creates an ES256 signed JWT for user.
func CreateToken(privateKeyPEM string, user types.UserContext, issuer string, ttl time.Duration) (string, error) {
	privateKey, err := jwt.ParseECPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("unable to parse private key: %w", err)
	}
	return CreateTokenWithKey(privateKey, user, issuer, ttl)
}

// CreateTokenWithKey is CreateToken with an already parsed key.
func CreateTokenWithKey(privateKey *ecdsa.PrivateKey, user types.UserContext, issuer string, ttl time.Duration) (string, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	now := time.Now()
	claims := JoblyClaims{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Issuer:    issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = KeyID

	return token.SignedString(privateKey)
}

// ParsePublicKey decodes a PEM encoded EC public key.
func ParsePublicKey(publicKeyPEM string) (*ecdsa.PublicKey, error) {
	key, err := jwt.ParseECPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse EC public key: %w", err)
	}
	return key, nil
}

// ParseToken verifies the ES256 signature, expiry and issuer and returns the claims.
func ParseToken(publicKey *ecdsa.PublicKey, tokenString, issuer string) (*JoblyClaims, error) {
	claims := &JoblyClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
