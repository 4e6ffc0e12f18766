package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "typ" claim. A verifier only accepts the type it
// was built for, so a session cookie can never be replayed as a reset link.
const (
	TypeSession       = "session"
	TypePasswordReset = "password_reset"
)

const (
	// DefaultSessionTTL is the lifetime of a normal browser session.
	DefaultSessionTTL = 24 * time.Hour

	// DefaultRememberTTL is the lifetime of a "remember me" session.
	DefaultRememberTTL = 30 * 24 * time.Hour

	// DefaultResetTTL is how long a password reset link stays valid.
	DefaultResetTTL = 30 * time.Minute
)

// Claims are shared by session and password-reset tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Type is TypeSession or TypePasswordReset.
	Type string `json:"typ"`

	// SID identifies the browser session (sessions only).
	SID string `json:"sid,omitempty"`

	// Admin is true when the session belongs to an administrator.
	Admin bool `json:"adm,omitempty"`
}

// NewSessionClaims builds the claims for a login session.
func NewSessionClaims(subject, sid string, admin bool, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: newRegistered(subject, issuer, ttl, now),
		Type:             TypeSession,
		SID:              sid,
		Admin:            admin,
	}
}

// NewResetClaims builds the claims for a password reset link.
func NewResetClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: newRegistered(subject, issuer, ttl, now),
		Type:             TypePasswordReset,
	}
}

func newRegistered(subject, issuer string, ttl time.Duration, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        NewJTI(),
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateType checks the "typ" claim.
func (c *Claims) ValidateType(expected string) error {
	if c.Type != expected {
		return ErrWrongType
	}
	return nil
}

// ValidateExpiryAt ensures the token is inside its [nbf, exp) window at now.
// There is no leeway: a token is rejected from the second it expires.
func (c *Claims) ValidateExpiryAt(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}

// ExpiresAtTime returns exp as a time.Time (zero when absent).
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
