package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Unique fields that can raise a ConflictError.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
)

// ConflictError reports a unique constraint violation on a user field. It
// matches ErrAlreadyExists with errors.Is.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("store: %s already exists", e.Field)
}

func (e *ConflictError) Is(target error) bool { return target == ErrAlreadyExists }

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop transactions being opened inside transactions.
type Store interface {
	Users() Users
	Portfolios() Portfolios
	UsedResetTokens() UsedResetTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Inside fn only
	// the repositories of tx may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUsernameOrEmail resolves a login identifier. An email match
	// wins over a username match.
	GetUserByUsernameOrEmail(ctx context.Context, login string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID). A
	// duplicate username or email returns a *ConflictError.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile rewrites the editable fields and bumps updated_at. A
	// duplicate username or email returns a *ConflictError.
	UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// DeleteUser cascades to portfolios and projects (per schema).
	DeleteUser(ctx context.Context, userID string) error

	CountAdmins(ctx context.Context) (int64, error)
}

type Portfolios interface {
	CreatePortfolio(ctx context.Context, p domain.Portfolio) error
	CreateProject(ctx context.Context, p domain.Project) error

	// CountByUser returns the number of portfolios owned by userID.
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// UsedResetTokens records consumed password reset token IDs until they expire.
type UsedResetTokens interface {
	// MarkUsed records jti as consumed. It returns ErrAlreadyExists if the
	// jti was already recorded, which makes it safe as the single-use gate.
	MarkUsed(ctx context.Context, jti string, expiresAt time.Time) error
	IsUsed(ctx context.Context, jti string) (bool, error)

	// DeleteExpired is housekeeping; it returns the number of rows removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
