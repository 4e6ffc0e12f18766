package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/store/drivers/sqlite/gen"
)

type usedResetTokensRepo struct {
	q *gen.Queries
}

func (r *usedResetTokensRepo) MarkUsed(ctx context.Context, jti string, expiresAt time.Time) error {
	return mapConflict(r.q.InsertUsedResetToken(ctx, gen.InsertUsedResetTokenParams{
		Jti:       jti,
		ExpiresAt: expiresAt.Unix(),
	}))
}

func (r *usedResetTokensRepo) IsUsed(ctx context.Context, jti string) (bool, error) {
	count, err := r.q.CountUsedResetToken(ctx, jti)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *usedResetTokensRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredUsedResetTokens(ctx, now.Unix())
}
