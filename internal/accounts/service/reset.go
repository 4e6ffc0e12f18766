package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store"
	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
	"github.com/aussiebroadwan/freelancehub/pkg/slogx"
)

// SingleUse selects where consumed reset token IDs are recorded.
type SingleUse string

const (
	// SingleUseOff lets a reset link be used until it expires.
	SingleUseOff SingleUse = "off"
	// SingleUseStore records consumed IDs in the credential store.
	SingleUseStore SingleUse = "store"
	// SingleUseRedis records consumed IDs in Redis.
	SingleUseRedis SingleUse = "redis"
)

// ParseSingleUse maps a config value to a mode. Empty means off.
func ParseSingleUse(s string) (SingleUse, error) {
	switch SingleUse(s) {
	case "", SingleUseOff:
		return SingleUseOff, nil
	case SingleUseStore, SingleUseRedis:
		return SingleUse(s), nil
	default:
		return "", fmt.Errorf("unknown single-use mode %q (want off, store or redis)", s)
	}
}

// ResetTokens issues and verifies password reset tokens. Tokens are signed
// JWTs and are never stored; only consumed IDs are, when single-use
// enforcement is on.
type ResetTokens struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Store    store.Store
	Issuer   string
	TTL      time.Duration

	Mode SingleUse
	// External is the ledger used in SingleUseRedis mode.
	External store.UsedResetTokens

	now func() time.Time
}

func (r *ResetTokens) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *ResetTokens) ttl() time.Duration {
	if r.TTL <= 0 {
		return jwtx.DefaultResetTTL
	}
	return r.TTL
}

// Issue signs a reset token for u.
func (r *ResetTokens) Issue(u domain.User) (string, error) {
	claims := jwtx.NewResetClaims(u.ID, r.Issuer, r.ttl(), r.clock())
	return r.Signer.Sign(claims)
}

// Verify resolves token to its user. Any failure is reported as
// ErrInvalidResetToken; store outages are returned as-is.
func (r *ResetTokens) Verify(ctx context.Context, token string) (domain.User, jwtx.Claims, error) {
	l := slogx.FromContext(ctx)

	claims, err := r.Verifier.Verify(token)
	if err != nil {
		l.Info("reset token rejected", slog.Any("error", err))
		return domain.User{}, jwtx.Claims{}, ErrInvalidResetToken
	}

	if ledger := r.ledger(r.Store); ledger != nil {
		used, err := ledger.IsUsed(ctx, claims.ID)
		if err != nil {
			return domain.User{}, jwtx.Claims{}, fmt.Errorf("check reset token: %w", err)
		}
		if used {
			l.Info("reset token already used", slog.String("user_id", claims.Subject))
			return domain.User{}, jwtx.Claims{}, ErrInvalidResetToken
		}
	}

	u, err := r.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("reset token for unknown user", slog.String("user_id", claims.Subject))
			return domain.User{}, jwtx.Claims{}, ErrInvalidResetToken
		}
		return domain.User{}, jwtx.Claims{}, err
	}
	return u, claims, nil
}

// Consume records claims as used. tx is the transaction the password update
// runs in; SingleUseStore writes through it so both commit together.
func (r *ResetTokens) Consume(ctx context.Context, tx store.Store, claims jwtx.Claims) error {
	ledger := r.ledger(tx)
	if ledger == nil {
		return nil
	}
	if err := ledger.MarkUsed(ctx, claims.ID, claims.ExpiresAtTime()); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("consume reset token: %w", err)
	}
	return nil
}

func (r *ResetTokens) ledger(s store.Store) store.UsedResetTokens {
	switch r.Mode {
	case SingleUseStore:
		return s.UsedResetTokens()
	case SingleUseRedis:
		return r.External
	default:
		return nil
	}
}
