package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/freelancehub/pkg/cryptox"
	"github.com/aussiebroadwan/freelancehub/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "accountsctl-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func pipedPasswords(lines ...string) *passwordReader {
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return &passwordReader{in: bufio.NewReader(in), fd: -1, out: &bytes.Buffer{}}
}

func TestCreateAdmin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	var out bytes.Buffer

	args := []string{"-username", "root", "-email", "root@example.com", "-first-name", "Ada", "-last-name", "Admin"}
	err := run(ctx, st, "create-admin", args, pipedPasswords("Secret1!", "Secret1!"), &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "created admin root")
	require.Contains(t, out.String(), "admins: 1\n")

	u, err := st.Users().GetUserByUsername(ctx, "root")
	require.NoError(t, err)
	require.True(t, u.IsAdmin)
	require.True(t, u.IsActive)
	require.NoError(t, cryptox.VerifyPassword("Secret1!", u.PasswordHash))
}

func TestCreateAdminReportsAdminCount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	for i, name := range []string{"root", "ops"} {
		var out bytes.Buffer
		args := []string{"-username", name, "-email", name + "@example.com", "-first-name", "Ada", "-last-name", "Admin"}
		require.NoError(t, run(ctx, st, "create-admin", args, pipedPasswords("Secret1!", "Secret1!"), &out))
		require.Contains(t, out.String(), fmt.Sprintf("admins: %d\n", i+1))
	}
}

func TestCreateAdminReportsFieldErrors(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	var out bytes.Buffer

	args := []string{"-username", "root", "-email", "not-an-email", "-first-name", "Ada", "-last-name", "Admin"}
	err := run(ctx, st, "create-admin", args, pipedPasswords("Secret1!", "Different1!"), &out)
	require.Error(t, err)
	require.Contains(t, out.String(), "confirm_password:")
	require.Contains(t, out.String(), "email:")

	admins, err := st.Users().CountAdmins(ctx)
	require.NoError(t, err)
	require.Zero(t, admins)
}

func TestRunUnknownCommand(t *testing.T) {
	err := run(context.Background(), newTestStore(t), "frobnicate", nil, pipedPasswords(), &bytes.Buffer{})
	require.ErrorIs(t, err, errUsage)
}

func TestParseProject(t *testing.T) {
	p, err := parseProject("Site | https://example.com | Landing page")
	require.NoError(t, err)
	require.Equal(t, "Site", p.Title)
	require.Equal(t, "https://example.com", p.URL)
	require.Equal(t, "Landing page", p.Description)

	p, err = parseProject("Just a title")
	require.NoError(t, err)
	require.Equal(t, "Just a title", p.Title)
	require.Empty(t, p.URL)

	_, err = parseProject(" |https://example.com")
	require.Error(t, err)
}

func TestSeedPortfolio(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	now := time.Now().UTC()
	owner := domain.User{
		ID:           idx.New().String(),
		Username:     "jane",
		Email:        "jane@example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: "hash",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(ctx, owner))

	var out bytes.Buffer
	args := []string{
		"-username", "jane",
		"-title", "Design work",
		"-project", "Logo|https://example.com/logo",
		"-project", "Brochure",
	}
	require.NoError(t, run(ctx, st, "seed-portfolio", args, pipedPasswords(), &out))
	require.Contains(t, out.String(), "with 2 project(s) for jane")

	count, err := st.Portfolios().CountByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	t.Run("unknown user", func(t *testing.T) {
		err := run(ctx, st, "seed-portfolio", []string{"-username", "ghost", "-title", "x"}, pipedPasswords(), &bytes.Buffer{})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("missing title", func(t *testing.T) {
		err := run(ctx, st, "seed-portfolio", []string{"-username", "jane"}, pipedPasswords(), &bytes.Buffer{})
		require.ErrorIs(t, err, errUsage)
	})
}
