package postgres

import (
	"context"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
)

type portfoliosRepo struct {
	db dbtx
}

func (r *portfoliosRepo) CreatePortfolio(ctx context.Context, p domain.Portfolio) error {
	createdAt := nowOr(p.CreatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO portfolios (id, user_id, title, bio, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.UserID, p.Title, p.Bio, createdAt, createdAt,
	)
	return err
}

func (r *portfoliosRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, portfolio_id, title, description, url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.PortfolioID, p.Title, p.Description, p.URL, nowOr(p.CreatedAt),
	)
	return err
}

func (r *portfoliosRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM portfolios WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
