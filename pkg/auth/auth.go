// Package auth signs and verifies the HS256 bearer tokens that guard the
// Streamable HTTP transport. It is a leaf package with no internal dependencies.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when GenerateToken is called with a zero ttl.
const DefaultTokenTTL = 24 * time.Hour

var (
	ErrEmptySecret = errors.New("auth secret is empty")
	ErrEmptyToken  = errors.New("token is empty")
)

// Claims are the JWT claims accepted by the server. Subject identifies the
// MCP client the token was issued to.
type Claims struct {
	jwt.RegisteredClaims
}

// ParseTTL parses a token lifetime given as a Go duration ("90m") or a number
// of hours ("24"). Empty or invalid input yields DefaultTokenTTL.
func ParseTTL(s string) time.Duration {
	if s == "" {
		return DefaultTokenTTL
	}
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	hours, err := strconv.Atoi(s)
	if err != nil || hours <= 0 {
		return DefaultTokenTTL
	}
	return time.Duration(hours) * time.Hour
}

// GenerateToken signs a token for subject valid for ttl.
func GenerateToken(subject string, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}
	return signed, nil
}

// ParseToken validates tokenString against secret and returns its claims.
// Expired, not-yet-valid and non-HMAC tokens are rejected.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT claims or signature")
	}
	return claims, nil
}
