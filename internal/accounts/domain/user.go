package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string // argon2id PHC string
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName is the "First Last" form used in notifications.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}
