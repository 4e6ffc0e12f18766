package domain

import "time"

// Portfolio is data owned by a user. It is removed with its owner.
type Portfolio struct {
	ID        string
	UserID    string
	Title     string
	Bio       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Project struct {
	ID          string
	PortfolioID string
	Title       string
	Description string
	URL         string
	CreatedAt   time.Time
}
