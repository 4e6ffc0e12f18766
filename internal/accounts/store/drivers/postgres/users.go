package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
)

const userColumns = `id, username, email, first_name, last_name, password_hash, is_admin, is_active, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) getOne(ctx context.Context, query string, args ...any) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *usersRepo) GetUserByUsernameOrEmail(ctx context.Context, login string) (domain.User, error) {
	return r.getOne(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE email = $1 OR username = $1
		 ORDER BY (email = $1) DESC
		 LIMIT 1`,
		login,
	)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	createdAt := nowOr(u.CreatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID, u.Username, u.Email, u.FirstName, u.LastName, u.PasswordHash,
		u.IsAdmin, u.IsActive, createdAt, createdAt,
	)
	return mapConflict(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET username = $1, email = $2, first_name = $3, last_name = $4, updated_at = $5
		 WHERE id = $6`,
		p.Username, p.Email, p.FirstName, p.LastName, time.Now().UTC(), userID,
	)
	if err != nil {
		return mapConflict(err)
	}
	return mapRowsAffected(res, nil)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	return mapRowsAffected(r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		newHash, time.Now().UTC(), userID,
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return mapRowsAffected(r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID))
}

func (r *usersRepo) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE is_admin`).Scan(&n)
	return n, err
}
