package sdk

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims the API embeds in its access tokens.
type TokenClaims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// DecodeClaims reads the claims of an access token without verifying its
// signature. The result is for display only; the server remains the authority.
func DecodeClaims(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}
	return claims, nil
}

// ExpiresAtTime returns the token expiry, or the zero time when absent.
func (c *TokenClaims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// IsExpired reports whether the token carries an expiry in the past.
func (c *TokenClaims) IsExpired() bool {
	exp := c.ExpiresAtTime()
	return !exp.IsZero() && time.Now().After(exp)
}
