package sqlite

import (
	"context"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store/drivers/sqlite/gen"
)

type portfoliosRepo struct {
	q *gen.Queries
}

func (r *portfoliosRepo) CreatePortfolio(ctx context.Context, p domain.Portfolio) error {
	createdAt := nowOr(p.CreatedAt)
	return r.q.CreatePortfolio(ctx, gen.CreatePortfolioParams{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Bio:       p.Bio,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
}

func (r *portfoliosRepo) CreateProject(ctx context.Context, p domain.Project) error {
	return r.q.CreateProject(ctx, gen.CreateProjectParams{
		ID:          p.ID,
		PortfolioID: p.PortfolioID,
		Title:       p.Title,
		Description: p.Description,
		Url:         p.URL,
		CreatedAt:   nowOr(p.CreatedAt),
	})
}

func (r *portfoliosRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.q.CountPortfoliosByUser(ctx, userID)
}
