package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
)

// JWTIssuer signs and verifies bearer tokens with an HMAC secret. Tokens
// carry id and name only and have no expiry claim.
type JWTIssuer struct {
	secret []byte
}

// NewJWTIssuer creates a token issuer with the given signing secret
func NewJWTIssuer(secret string) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret)}
}

// Ensure JWTIssuer satisfies the TokenIssuer port
var _ core.TokenIssuer = (*JWTIssuer)(nil)

// Issue signs a token asserting the given identity
func (i *JWTIssuer) Issue(identity core.Identity) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   identity.ID,
		"name": identity.Name,
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and extracts the asserted identity.
// Any structurally or cryptographically invalid token maps to the single
// unauthorized error; callers never learn why verification failed.
func (i *JWTIssuer) Verify(tokenString string) (core.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return core.Identity{}, errs.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return core.Identity{}, errs.ErrUnauthorized
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return core.Identity{}, errs.ErrUnauthorized
	}
	name, _ := claims["name"].(string)

	return core.Identity{ID: id, Name: name}, nil
}
