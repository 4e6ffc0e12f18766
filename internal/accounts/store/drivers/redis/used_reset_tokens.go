// Package redis keeps the consumed password reset token ledger in Redis, so
// several accounts instances can share single-use enforcement.
package redis

import (
	"context"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/store"
	goredis "github.com/redis/go-redis/v9"
)

const defaultPrefix = "fh:reset:used:"

// UsedResetTokens implements store.UsedResetTokens. Entries carry a TTL that
// matches the token expiry, so DeleteExpired has nothing to do.
type UsedResetTokens struct {
	rdb    goredis.UniversalClient
	prefix string
	now    func() time.Time
}

var _ store.UsedResetTokens = (*UsedResetTokens)(nil)

// NewUsedResetTokens builds the ledger. An empty prefix selects the default.
func NewUsedResetTokens(rdb goredis.UniversalClient, prefix string) *UsedResetTokens {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &UsedResetTokens{rdb: rdb, prefix: prefix, now: time.Now}
}

func (u *UsedResetTokens) key(jti string) string { return u.prefix + jti }

func (u *UsedResetTokens) MarkUsed(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(u.now())
	if ttl < time.Second {
		ttl = time.Second
	}

	ok, err := u.rdb.SetNX(ctx, u.key(jti), expiresAt.Unix(), ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrAlreadyExists
	}
	return nil
}

func (u *UsedResetTokens) IsUsed(ctx context.Context, jti string) (bool, error) {
	n, err := u.rdb.Exists(ctx, u.key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (u *UsedResetTokens) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

// Ping reports whether Redis is reachable.
func (u *UsedResetTokens) Ping(ctx context.Context) error {
	return u.rdb.Ping(ctx).Err()
}
