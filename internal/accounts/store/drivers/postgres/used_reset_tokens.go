package postgres

import (
	"context"
	"time"
)

type usedResetTokensRepo struct {
	db dbtx
}

func (r *usedResetTokensRepo) MarkUsed(ctx context.Context, jti string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO used_reset_tokens (jti, expires_at) VALUES ($1, $2)`,
		jti, expiresAt.Unix(),
	)
	return mapConflict(err)
}

func (r *usedResetTokensRepo) IsUsed(ctx context.Context, jti string) (bool, error) {
	var used bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM used_reset_tokens WHERE jti = $1)`, jti,
	).Scan(&used)
	return used, err
}

func (r *usedResetTokensRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM used_reset_tokens WHERE expires_at <= $1`, now.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
