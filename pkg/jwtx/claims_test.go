package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "freelancehub"}}

	require.NoError(t, c.ValidateIssuer("freelancehub"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("someone-else"), jwtx.ErrIssuer)
}

func TestValidateType(t *testing.T) {
	c := &jwtx.Claims{Type: jwtx.TypeSession}

	require.NoError(t, c.ValidateType(jwtx.TypeSession))
	require.ErrorIs(t, c.ValidateType(jwtx.TypePasswordReset), jwtx.ErrWrongType)
}

func TestValidateExpiryAt(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := jwtx.NewResetClaims("user-1", "freelancehub", 30*time.Minute, now)

	t.Run("inside window", func(t *testing.T) {
		require.NoError(t, c.ValidateExpiryAt(now))
		require.NoError(t, c.ValidateExpiryAt(now.Add(29*time.Minute+59*time.Second)))
	})

	t.Run("expired exactly at exp", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateExpiryAt(now.Add(30*time.Minute)), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateExpiryAt(now.Add(-time.Second)), jwtx.ErrNotYetValid)
	})

	t.Run("missing exp", func(t *testing.T) {
		empty := &jwtx.Claims{}
		require.ErrorIs(t, empty.ValidateExpiryAt(now), jwtx.ErrInvalidClaim)
	})
}

func TestNewSessionClaims(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := jwtx.NewSessionClaims("user-1", "sid-1", true, "freelancehub", jwtx.DefaultSessionTTL, now)

	require.Equal(t, jwtx.TypeSession, c.Type)
	require.Equal(t, "user-1", c.Subject)
	require.Equal(t, "sid-1", c.SID)
	require.True(t, c.Admin)
	require.Equal(t, now.Add(24*time.Hour), c.ExpiresAtTime())
	require.NotEmpty(t, c.ID)
}

func TestNewJTI_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for range 100 {
		jti := jwtx.NewJTI()
		require.Len(t, jti, 27)
		require.NotContains(t, seen, jti)
		seen[jti] = struct{}{}
	}
}
