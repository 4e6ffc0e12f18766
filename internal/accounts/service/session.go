package service

import (
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
	"github.com/google/uuid"
)

// Identity is the caller resolved from a session.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// IdentityFromClaims maps verified session claims to an Identity.
func IdentityFromClaims(c jwtx.Claims) Identity {
	return Identity{UserID: c.Subject, IsAdmin: c.Admin}
}

// Session is a freshly minted session token.
type Session struct {
	ID        string
	Token     string
	ExpiresAt time.Time
	// Persistent sessions outlive the browser ("remember me").
	Persistent bool
}

// Sessions mints signed session tokens.
type Sessions struct {
	Signer      jwtx.Signer
	Issuer      string
	TTL         time.Duration
	RememberTTL time.Duration

	now func() time.Time
}

func (s *Sessions) Issue(u domain.User, remember bool) (Session, error) {
	now := time.Now()
	if s.now != nil {
		now = s.now()
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	if remember {
		ttl = s.RememberTTL
		if ttl <= 0 {
			ttl = jwtx.DefaultRememberTTL
		}
	}

	sid := uuid.NewString()
	claims := jwtx.NewSessionClaims(u.ID, sid, u.IsAdmin, s.Issuer, ttl, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, err
	}

	return Session{
		ID:         sid,
		Token:      token,
		ExpiresAt:  claims.ExpiresAtTime(),
		Persistent: remember,
	}, nil
}
