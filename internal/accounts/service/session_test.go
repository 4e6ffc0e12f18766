package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSessionsIssue(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, testIssuer, jwtx.TypeSession)
	require.NoError(t, err)

	now := time.Now().Truncate(time.Second)
	sessions := &Sessions{Signer: signer, Issuer: testIssuer, now: func() time.Time { return now }}
	admin := domain.User{ID: "u-1", IsAdmin: true}

	t.Run("default session", func(t *testing.T) {
		sess, err := sessions.Issue(admin, false)
		require.NoError(t, err)
		require.False(t, sess.Persistent)
		require.Equal(t, now.Add(jwtx.DefaultSessionTTL).Unix(), sess.ExpiresAt.Unix())

		_, err = uuid.Parse(sess.ID)
		require.NoError(t, err)

		claims, err := verifier.Verify(sess.Token)
		require.NoError(t, err)
		require.Equal(t, sess.ID, claims.SID)
		require.Equal(t, Identity{UserID: "u-1", IsAdmin: true}, IdentityFromClaims(claims))
	})

	t.Run("remember me", func(t *testing.T) {
		sess, err := sessions.Issue(admin, true)
		require.NoError(t, err)
		require.True(t, sess.Persistent)
		require.Equal(t, now.Add(jwtx.DefaultRememberTTL).Unix(), sess.ExpiresAt.Unix())
	})
}
