package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store"
	"github.com/aussiebroadwan/freelancehub/pkg/idx"
	"github.com/aussiebroadwan/freelancehub/pkg/slogx"
)

// parseProject reads "title|url|description"; url and description are optional.
func parseProject(s string) (domain.Project, error) {
	parts := strings.SplitN(s, "|", 3)
	title := strings.TrimSpace(parts[0])
	if title == "" {
		return domain.Project{}, errors.New("project title is required")
	}

	p := domain.Project{Title: title}
	if len(parts) > 1 {
		p.URL = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		p.Description = strings.TrimSpace(parts[2])
	}
	return p, nil
}

func seedPortfolio(ctx context.Context, db store.Store, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("seed-portfolio", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		username, title, bio string
		projects             []domain.Project
	)
	fs.StringVar(&username, "username", "", "owner of the portfolio")
	fs.StringVar(&title, "title", "", "portfolio title")
	fs.StringVar(&bio, "bio", "", "portfolio bio")
	fs.Func("project", `project as "title|url|description" (repeatable)`, func(s string) error {
		p, err := parseProject(s)
		if err != nil {
			return err
		}
		projects = append(projects, p)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if username == "" || title == "" {
		return fmt.Errorf("%w: -username and -title are required", errUsage)
	}

	owner, err := db.Users().GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("lookup %q: %w", username, err)
	}

	now := time.Now().UTC()
	portfolio := domain.Portfolio{
		ID:        idx.New().String(),
		UserID:    owner.ID,
		Title:     title,
		Bio:       bio,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = db.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Portfolios().CreatePortfolio(ctx, portfolio); err != nil {
			return fmt.Errorf("create portfolio: %w", err)
		}
		for _, p := range projects {
			p.ID = idx.New().String()
			p.PortfolioID = portfolio.ID
			p.CreatedAt = now
			if err := tx.Portfolios().CreateProject(ctx, p); err != nil {
				return fmt.Errorf("create project %q: %w", p.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("portfolio seeded",
		"user_id", owner.ID,
		"portfolio_id", portfolio.ID,
		"projects", len(projects),
	)
	fmt.Fprintf(out, "seeded portfolio %s with %d project(s) for %s\n", portfolio.ID, len(projects), owner.Username)
	return nil
}
